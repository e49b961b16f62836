package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"replenishment-service/core/reconcile"
	"replenishment-service/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrBucketMissing is returned by Inspect when the archive bucket does not exist.
var ErrBucketMissing = errors.New("archive bucket does not exist")

// keyTimeLayout sorts lexically in time order.
const keyTimeLayout = "20060102T150405.000Z"

// Snapshot is the archived document for one reconciliation pass.
type Snapshot struct {
	PassID     string                    `json:"pass_id"`
	CapturedAt time.Time                 `json:"captured_at"`
	Items      []reconcile.InventoryItem `json:"items"`
}

// Archiver writes inventory snapshots to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// New creates an archiver writing under cfg.Bucket/cfg.Prefix.
func New(client storage.Client, cfg storage.Config) *Archiver {
	return &Archiver{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// EnsureBucket creates the archive bucket when it does not exist.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Archive uploads the snapshot a pass decided on.
func (a *Archiver) Archive(ctx context.Context, passID string, items []reconcile.InventoryItem) error {
	capturedAt := a.now()
	doc := Snapshot{
		PassID:     passID,
		CapturedAt: capturedAt,
		Items:      items,
	}
	if doc.Items == nil {
		doc.Items = []reconcile.InventoryItem{}
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := a.ObjectKey(capturedAt, passID)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}
	return nil
}

// ObjectKey returns the object name of a snapshot captured at t.
func (a *Archiver) ObjectKey(t time.Time, passID string) string {
	name := t.UTC().Format(keyTimeLayout) + "-" + passID + ".json"
	if a.prefix == "" {
		return name
	}
	return a.prefix + "/" + name
}

// Latest returns the most recent snapshot key, or "" when nothing is archived.
func (a *Archiver) Latest(ctx context.Context) (string, error) {
	opts := minio.ListObjectsOptions{Recursive: true}
	if a.prefix != "" {
		opts.Prefix = a.prefix + "/"
	}

	latest := ""
	for obj := range a.client.ListObjects(ctx, a.bucket, opts) {
		if obj.Err != nil {
			return "", fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") && obj.Key > latest {
			latest = obj.Key
		}
	}
	return latest, nil
}

// Inspect verifies the bucket exists and returns the latest snapshot key.
func (a *Archiver) Inspect(ctx context.Context) (string, error) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrBucketMissing, a.bucket)
	}
	return a.Latest(ctx)
}
