package types

type DestinationType string

const (
	S3   DestinationType = "S3"
	GCS  DestinationType = "GCS"
	Blob DestinationType = "BLOB"
)

// UploaderConfig is the on-disk shape of a destination config file.
type UploaderConfig struct {
	Type         DestinationType `json:"type" validate:"required,oneof=S3 GCS BLOB"`
	Bucket       string          `json:"bucket" validate:"required,bucket"`
	UploadConfig any             `json:"upload"`
}
