package gcs

import (
	"github.com/datazip-inc/rogue-records/utils"
)

type Config struct {
	ProjectID string `json:"project_id,omitempty"`
	// Path to a service account key file. Application default credentials are
	// used when empty.
	CredentialsFile string `json:"credentials_file,omitempty" validate:"omitempty,file"`
	// Endpoint overrides the storage API endpoint, e.g. for an emulator.
	Endpoint string `json:"endpoint,omitempty" validate:"omitempty,url"`
	Prefix   string `json:"path,omitempty"`
}

func (c *Config) Validate() error {
	return utils.Validate(c)
}
