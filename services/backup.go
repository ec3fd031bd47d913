package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hostelms_go/config"
	"hostelms_go/store"
)

// BackupService zips the CSV data directory and uploads it to S3 on a
// schedule. Backups are the only defense this system has against a bad bulk
// overwrite, since every update rewrites a whole table.
type BackupService struct {
	awsConfig aws.Config
	bucket    string
}

// NewBackupService creates a service instance. AWS configuration failures
// are logged, not fatal; backups stay disabled until configured.
func NewBackupService() *BackupService {
	cfg, err := awscfg.LoadDefaultConfig(context.Background(), awscfg.WithRegion(config.AppConfig.AWSRegion))
	if err != nil {
		logrus.WithError(err).Warn("Failed to load AWS config; S3 backups will fail until configured")
	}

	return &BackupService{
		awsConfig: cfg,
		bucket:    config.AppConfig.S3BucketName,
	}
}

// BackupDataDir archives every table file plus a manifest into a ZIP and
// uploads it to S3.
func (bs *BackupService) BackupDataDir() error {
	if bs.awsConfig.Region == "" {
		return fmt.Errorf("AWS not configured")
	}

	now := time.Now().UTC()
	archiveName := fmt.Sprintf("hostel_data_%s_%s.zip", now.Format("2006-01-02"), uuid.New().String()[:8])

	buf, fileCount, err := bs.createZipArchive(archiveName, now)
	if err != nil {
		return fmt.Errorf("failed to create backup archive: %w", err)
	}

	key := fmt.Sprintf("backups/%d/%02d/%s", now.Year(), now.Month(), archiveName)
	if err := bs.uploadToS3(key, buf); err != nil {
		return fmt.Errorf("failed to upload backup to S3: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"s3_key": key,
		"files":  fileCount,
		"bytes":  buf.Len(),
	}).Info("Data backup uploaded")
	return nil
}

func (bs *BackupService) createZipArchive(archiveName string, now time.Time) (*bytes.Buffer, int, error) {
	buf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(buf)

	var files []string
	for _, t := range store.AllTables() {
		path := filepath.Join(store.Records.DataDir(), t.File)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
		}

		entry, err := zipWriter.Create(t.File)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create %s in ZIP: %w", t.File, err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, 0, fmt.Errorf("failed to write %s to ZIP: %w", t.File, err)
		}
		files = append(files, t.File)
	}

	metadataFile, err := zipWriter.Create("manifest.json")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create manifest in ZIP: %w", err)
	}

	manifest := map[string]any{
		"archive_name":   archiveName,
		"export_date":    now,
		"files":          files,
		"format_version": "1.0",
		"description":    "Hostel MS data directory backup",
	}
	encoder := json.NewEncoder(metadataFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		return nil, 0, fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to close ZIP writer: %w", err)
	}
	return buf, len(files), nil
}

func (bs *BackupService) uploadToS3(key string, data *bytes.Buffer) error {
	s3Client := s3.NewFromConfig(bs.awsConfig)

	_, err := s3Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      &bs.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data.Bytes()),
		ContentType: aws.String("application/zip"),
	})
	return err
}
