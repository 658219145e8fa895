package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tradelens_backend/internal/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BackupProvider pushes an exported snapshot to durable storage and
// returns where it landed.
type BackupProvider interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// LocalBackupProvider writes snapshots into a directory on disk.
type LocalBackupProvider struct {
	Config *config.BackupConfig
}

func (p *LocalBackupProvider) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return dst, nil
}

// MinioBackupProvider pushes snapshots to a MinIO bucket.
type MinioBackupProvider struct {
	Config *config.BackupConfig
	Client *minio.Client
}

func NewMinioBackupProvider(cfg *config.BackupConfig) (*MinioBackupProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioBackupProvider{Config: cfg, Client: client}, nil
}

func (p *MinioBackupProvider) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
	if err != nil {
		return "", err
	}
	return "/" + p.Config.MinioBucket + "/" + filename, nil
}

// OSSBackupProvider pushes snapshots to an Aliyun OSS bucket.
type OSSBackupProvider struct {
	Config *config.BackupConfig
	Client *oss.Client
}

func NewOSSBackupProvider(cfg *config.BackupConfig) (*OSSBackupProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSBackupProvider{Config: cfg, Client: client}, nil
}

func (p *OSSBackupProvider) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(filename, bytes.NewReader(data)); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/%s", p.Config.OSSBucket, p.Config.OSSEndpoint, filename), nil
}

// NewBackupProvider picks the configured provider, falling back to local
// storage when the remote client cannot be constructed.
func NewBackupProvider(cfg *config.Config) BackupProvider {
	switch cfg.Backup.Provider {
	case "minio":
		if p, err := NewMinioBackupProvider(&cfg.Backup); err == nil {
			return p
		}
	case "oss":
		if p, err := NewOSSBackupProvider(&cfg.Backup); err == nil {
			return p
		}
	}
	local := &LocalBackupProvider{Config: &cfg.Backup}
	if local.Config.LocalPath == "" {
		local.Config.LocalPath = "backups"
	}
	return local
}
