package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
)

// boardPartition is the partition every snapshot entity lives in.
const boardPartition = "board"

// tableClient is the subset of *aztables.Client the store uses.
type tableClient interface {
	GetEntity(ctx context.Context, partitionKey, rowKey string, options *aztables.GetEntityOptions) (aztables.GetEntityResponse, error)
	UpsertEntity(ctx context.Context, entity []byte, options *aztables.UpsertEntityOptions) (aztables.UpsertEntityResponse, error)
}

type snapshotEntity struct {
	aztables.Entity
	Payload string `json:"Payload"`
}

// AzureTableStore keeps blobs as entities of an Azure Storage table. A single
// string property is capped at 64 KiB by the service.
type AzureTableStore struct {
	table tableClient
}

// NewAzureTableStore connects to tableName using an account connection string.
func NewAzureTableStore(connStr, tableName string) (*AzureTableStore, error) {
	opts := aztables.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    3,
				TryTimeout:    time.Minute,
				RetryDelay:    time.Second,
				MaxRetryDelay: 15 * time.Second,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	svc, err := aztables.NewServiceClientFromConnectionString(connStr, &opts)
	if err != nil {
		return nil, err
	}
	return &AzureTableStore{table: svc.NewClient(tableName)}, nil
}

func (s *AzureTableStore) Load(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.table.GetEntity(ctx, boardPartition, key, nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return decodeSnapshotEntity(resp.Value)
}

func (s *AzureTableStore) Save(ctx context.Context, key string, data []byte) error {
	payload, err := encodeSnapshotEntity(key, data)
	if err != nil {
		return err
	}
	_, err = s.table.UpsertEntity(ctx, payload, &aztables.UpsertEntityOptions{UpdateMode: aztables.UpdateModeReplace})
	return err
}

func encodeSnapshotEntity(key string, data []byte) ([]byte, error) {
	return json.Marshal(snapshotEntity{
		Entity:  aztables.Entity{PartitionKey: boardPartition, RowKey: key},
		Payload: string(data),
	})
}

func decodeSnapshotEntity(raw []byte) ([]byte, error) {
	var ent snapshotEntity
	if err := json.Unmarshal(raw, &ent); err != nil {
		return nil, err
	}
	return []byte(ent.Payload), nil
}

var _ BlobStore = (*AzureTableStore)(nil)
