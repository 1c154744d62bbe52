package destination

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/logger"
)

const DestError = "destination error"

type NewFunc func() Uploader

var RegisteredUploaders = map[types.DestinationType]NewFunc{}

// File is one local file and the object name it is uploaded under.
type File struct {
	Source string `json:"source"`
	Name   string `json:"name"`
}

// Client binds a checked Uploader to one bucket.
type Client struct {
	uploader Uploader
	bucket   string
}

// NewClient builds the uploader registered for config.Type, decodes its
// section of the config and checks the bucket.
func NewClient(ctx context.Context, config *types.UploaderConfig) (*Client, error) {
	if err := utils.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid uploader config: %s", err)
	}

	newfunc, found := RegisteredUploaders[config.Type]
	if !found {
		return nil, fmt.Errorf("invalid destination type has been passed [%s]", config.Type)
	}

	uploader := newfunc()
	uploaderConfig := uploader.GetConfigRef()
	if config.UploadConfig != nil {
		if err := utils.Unmarshal(config.UploadConfig, uploaderConfig); err != nil {
			return nil, err
		}
	}
	if err := uploaderConfig.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate %s config: %s", config.Type, err)
	}

	if err := uploader.Check(ctx, config.Bucket); err != nil {
		return nil, fmt.Errorf("failed to test destination: %s", err)
	}

	return &Client{uploader: uploader, bucket: config.Bucket}, nil
}

// NewClientFromFile reads an uploader config file and builds its client.
func NewClientFromFile(ctx context.Context, configPath string) (*Client, error) {
	config := &types.UploaderConfig{}
	if err := utils.UnmarshalFile(configPath, config, true); err != nil {
		return nil, err
	}
	return NewClient(ctx, config)
}

func (c *Client) Bucket() string {
	return c.bucket
}

func (c *Client) Type() string {
	return c.uploader.Type()
}

// Upload copies one file into the bucket. The object name defaults to the
// base name of the source.
func (c *Client) Upload(ctx context.Context, source, name string) error {
	if name == "" {
		name = filepath.Base(source)
	}

	if err := c.uploader.Upload(ctx, c.bucket, source, name); err != nil {
		return fmt.Errorf("%s: failed to upload %s to %s/%s: %w", DestError, source, c.bucket, name, err)
	}
	logger.Infof("file %s uploaded to %s/%s", source, c.bucket, name)
	return nil
}

func (c *Client) Close() error {
	return c.uploader.Close()
}

// ObjectName joins a key prefix and a file name with forward slashes.
func ObjectName(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
