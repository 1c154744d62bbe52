package types

type FileFormat string

const (
	CSV     FileFormat = "csv"
	Parquet FileFormat = "parquet"
)
