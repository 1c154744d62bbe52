package s3

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/logger"
)

// S3 uploads files with the s3manager multipart uploader.
type S3 struct {
	config   *Config
	client   *s3.S3
	uploader *s3manager.Uploader
}

func (s *S3) GetConfigRef() destination.Config {
	s.config = &Config{}
	return s.config
}

func (s *S3) Spec() any {
	return Config{}
}

func (s *S3) Type() string {
	return string(types.S3)
}

func (s *S3) Check(ctx context.Context, bucket string) error {
	if err := s.setup(); err != nil {
		return err
	}

	_, err := s.client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %s", bucket, err)
	}
	return nil
}

func (s *S3) setup() error {
	awsCfg := aws.Config{}
	if s.config.Region != "" {
		awsCfg.Region = aws.String(s.config.Region)
	}

	// Credentials - Prioritize explicit keys
	if s.config.AccessKey != "" && s.config.SecretKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(s.config.AccessKey, s.config.SecretKey, s.config.SessionToken)
	} else {
		logger.Info("explicit S3 credentials not provided, using default AWS credential chain")
	}

	if s.config.Endpoint != "" {
		logger.Infof("using custom S3 endpoint: %s", s.config.Endpoint)
		awsCfg.Endpoint = aws.String(s.config.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(s.config.PathStyle)
		if !s.config.UseSSL {
			awsCfg.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            awsCfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return fmt.Errorf("failed to create AWS session: %s", err)
	}

	s.client = s3.New(sess)
	s.uploader = s3manager.NewUploaderWithClient(s.client)
	return nil
}

func (s *S3) Upload(ctx context.Context, bucket, source, name string) error {
	if s.uploader == nil {
		return fmt.Errorf("s3 uploader used before check")
	}

	file, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open file: %s", err)
	}
	defer file.Close()

	key := destination.ObjectName(s.config.Prefix, name)
	_, err = s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to put object into s3: %s", err)
	}

	logger.Debugf("uploaded %s to s3://%s/%s", source, bucket, key)
	return nil
}

func (s *S3) Close() error {
	return nil
}

func init() {
	destination.RegisteredUploaders[types.S3] = func() destination.Uploader {
		return new(S3)
	}
}
