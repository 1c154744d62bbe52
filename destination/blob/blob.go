package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

type Config struct {
	// Root is the local directory holding one sub directory per bucket.
	Root   string `json:"root" validate:"required"`
	Prefix string `json:"path,omitempty"`
}

func (c *Config) Validate() error {
	return utils.Validate(c)
}

// Blob uploads into a directory-backed bucket through the portable
// gocloud.dev blob API.
type Blob struct {
	config *Config
	bucket *blob.Bucket
}

func (b *Blob) GetConfigRef() destination.Config {
	b.config = &Config{}
	return b.config
}

func (b *Blob) Spec() any {
	return Config{}
}

func (b *Blob) Type() string {
	return string(types.Blob)
}

func (b *Blob) Check(ctx context.Context, bucket string) error {
	opened, err := fileblob.OpenBucket(filepath.Join(b.config.Root, bucket), &fileblob.Options{CreateDir: true})
	if err != nil {
		return fmt.Errorf("failed to open bucket %s: %s", bucket, err)
	}

	if _, err := opened.IsAccessible(ctx); err != nil {
		_ = opened.Close()
		return fmt.Errorf("bucket %s is not accessible: %s", bucket, err)
	}
	b.bucket = opened
	return nil
}

func (b *Blob) Upload(ctx context.Context, _, source, name string) error {
	if b.bucket == nil {
		return fmt.Errorf("blob uploader used before check")
	}

	file, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open file: %s", err)
	}
	defer file.Close()

	key := destination.ObjectName(b.config.Prefix, name)
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := b.bucket.NewWriter(writeCtx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to create writer: %s", err)
	}

	if _, err := io.Copy(writer, file); err != nil {
		// cancelling before Close discards the partial object
		cancel()
		_ = writer.Close()
		return fmt.Errorf("failed to write object: %s", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %s", err)
	}

	logger.Debugf("uploaded %s to %s", source, key)
	return nil
}

func (b *Blob) Close() error {
	if b.bucket == nil {
		return nil
	}
	return b.bucket.Close()
}

func init() {
	destination.RegisteredUploaders[types.Blob] = func() destination.Uploader {
		return new(Blob)
	}
}
