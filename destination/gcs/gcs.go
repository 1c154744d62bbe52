package gcs

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"google.golang.org/api/option"
)

// GCS uploads files into Google Cloud Storage buckets.
type GCS struct {
	config *Config
	client *storage.Client
}

func (g *GCS) GetConfigRef() destination.Config {
	g.config = &Config{}
	return g.config
}

func (g *GCS) Spec() any {
	return Config{}
}

func (g *GCS) Type() string {
	return string(types.GCS)
}

func (g *GCS) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if g.config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(g.config.CredentialsFile))
	}
	if g.config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(g.config.Endpoint))
		if g.config.CredentialsFile == "" {
			opts = append(opts, option.WithoutAuthentication())
		}
	}
	return opts
}

func (g *GCS) Check(ctx context.Context, bucket string) error {
	client, err := storage.NewClient(ctx, g.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %s", err)
	}
	g.client = client

	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("failed to access bucket %s: %s", bucket, err)
	}
	return nil
}

func (g *GCS) Upload(ctx context.Context, bucket, source, name string) error {
	if g.client == nil {
		return fmt.Errorf("gcs uploader used before check")
	}

	file, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open file: %s", err)
	}
	defer file.Close()

	object := destination.ObjectName(g.config.Prefix, name)
	writer := g.client.Bucket(bucket).Object(object).NewWriter(ctx)
	_, copyErr := io.Copy(writer, file)
	if copyErr != nil {
		// abandon the partial object
		_ = writer.CloseWithError(copyErr)
		return fmt.Errorf("failed to write object: %s", copyErr)
	}

	if err := utils.ErrExecFormat("failed to finalize object: %s", writer.Close)(); err != nil {
		return err
	}

	logger.Debugf("uploaded %s to gs://%s/%s", source, bucket, object)
	return nil
}

func (g *GCS) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func init() {
	destination.RegisteredUploaders[types.GCS] = func() destination.Uploader {
		return new(GCS)
	}
}
