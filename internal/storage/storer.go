package storage

type Type string

const (
	File  Type = "file"
	ES    Type = "es"
	PG    Type = "pg"
	S3    Type = "s3"
	InMem Type = "in_mem"
	None  Type = "none"
)

var SupportedTypes = []Type{File, ES, PG, S3, InMem, None}

func (t Type) Valid() bool {
	for _, s := range SupportedTypes {
		if t == s {
			return true
		}
	}
	return false
}

type SourceError string

const (
	ErrUnsupportedSource SourceError = "unsupported source type: %s"
)

func (e SourceError) Error() string {
	return string(e)
}
