package s3

import (
	"fmt"

	"github.com/datazip-inc/rogue-records/utils"
)

type Config struct {
	Region       string `json:"s3_region,omitempty"`
	AccessKey    string `json:"s3_access_key,omitempty"`
	SecretKey    string `json:"s3_secret_key,omitempty"`
	SessionToken string `json:"s3_session_token,omitempty"`
	// S3 endpoint for custom S3-compatible services (like MinIO)
	Endpoint  string `json:"s3_endpoint,omitempty" validate:"omitempty,url"`
	UseSSL    bool   `json:"s3_use_ssl,omitempty"`
	PathStyle bool   `json:"s3_path_style,omitempty"`
	// Prefix is prepended to every object name.
	Prefix string `json:"s3_path,omitempty"`
}

func (c *Config) Validate() error {
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("s3_access_key and s3_secret_key must be set together")
	}
	if c.Region == "" && c.Endpoint == "" {
		return fmt.Errorf("either s3_region or s3_endpoint is required")
	}

	return utils.Validate(c)
}
