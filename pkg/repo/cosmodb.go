package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"

	"github.com/skynet2/netsuite-unified-target/pkg/database"
)

const (
	stateContainer     = "state"
	duplicateContainer = "duplicates"
	defaultPoolSize    = 50
)

// Cosmo is the Cosmos DB state store. State entries and duplicate keys
// are partitioned by entity type.
type Cosmo struct {
	cl          *azcosmos.DatabaseClient
	setupCalled bool
}

func NewCosmo(
	cl *azcosmos.Client,
	dbName string,
) (*Cosmo, error) {
	_, err := cl.CreateDatabase(context.Background(), azcosmos.DatabaseProperties{
		ID: dbName,
	}, &azcosmos.CreateDatabaseOptions{})

	c := &Cosmo{}

	if realErr := c.ignoreDuplicateErr(err); realErr != nil {
		return nil, realErr
	}

	db, err := cl.NewDatabase(dbName)
	if err != nil {
		return nil, err
	}
	c.cl = db

	if err = c.setupContainers(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cosmo) setupContainers() error {
	if c.setupCalled {
		return nil
	}

	_, err := c.cl.CreateContainer(context.Background(), azcosmos.ContainerProperties{
		ID: stateContainer,
		PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
			Paths: []string{"/entityType"},
		},
	}, &azcosmos.CreateContainerOptions{})
	if c.ignoreDuplicateErr(err) != nil {
		return err
	}

	_, err = c.cl.CreateContainer(context.Background(), azcosmos.ContainerProperties{
		ID: duplicateContainer,
		PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
			Paths: []string{"/entityType"},
		},
	}, &azcosmos.CreateContainerOptions{})
	if c.ignoreDuplicateErr(err) != nil {
		return err
	}

	c.setupCalled = true

	return c.ignoreDuplicateErr(err)
}

func (c *Cosmo) ignoreDuplicateErr(err error) error {
	if err == nil {
		return nil
	}
	var azureErr *azcore.ResponseError
	if errors.As(err, &azureErr) && azureErr.StatusCode == 409 {
		return nil
	}

	return err
}

func (c *Cosmo) AddStateEntries(ctx context.Context, entries []database.StateEntry) error {
	if len(entries) == 0 {
		return nil
	}

	container, err := c.getStateContainer()
	if err != nil {
		return err
	}

	pool := workerpool.New(defaultPoolSize)

	var finalErr error

	for _, entry1 := range entries {
		entryCopy := entry1

		pool.Submit(func() {
			if finalErr != nil {
				return
			}

			partitionKey := azcosmos.NewPartitionKeyString(string(entryCopy.EntityType))
			bytes, entryErr := json.Marshal(entryCopy)
			if entryErr != nil {
				finalErr = errors.Join(finalErr, entryErr)
				return
			}

			_, err = container.CreateItem(ctx, partitionKey, bytes, nil)
			if err != nil {
				finalErr = errors.Join(finalErr, err)
				return
			}
		})
	}

	pool.StopWait()

	return finalErr
}

func (c *Cosmo) getStateContainer() (*azcosmos.ContainerClient, error) {
	if err := c.setupContainers(); err != nil {
		return nil, err
	}

	return c.cl.NewContainer(stateContainer)
}

func (c *Cosmo) getDuplicateContainer() (*azcosmos.ContainerClient, error) {
	if err := c.setupContainers(); err != nil {
		return nil, err
	}

	return c.cl.NewContainer(duplicateContainer)
}

// GetStateEntries returns the most recent state entries for one entity
// type, newest first.
func (c *Cosmo) GetStateEntries(
	ctx context.Context,
	entityType database.EntityType,
	limit int,
) ([]*database.StateEntry, error) {
	container, err := c.getStateContainer()
	if err != nil {
		return nil, err
	}

	partitionKey := azcosmos.NewPartitionKeyString(string(entityType))

	query := "SELECT * FROM c ORDER BY c.createdAt DESC OFFSET 0 LIMIT @limit"
	pager := container.NewQueryItemsPager(query, partitionKey, &azcosmos.QueryOptions{
		QueryParameters: []azcosmos.QueryParameter{
			{
				Name:  "@limit",
				Value: limit,
			},
		},
	})

	var items []*database.StateEntry

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, pageErr
		}

		for _, bytes := range response.Items {
			item := database.StateEntry{}
			err = json.Unmarshal(bytes, &item)
			if err != nil {
				return nil, err
			}

			items = append(items, &item)
		}
	}

	return items, nil
}

// GetStateEntriesByHash returns state entries whose content hash is in
// the given set, newest first.
func (c *Cosmo) GetStateEntriesByHash(
	ctx context.Context,
	hashes []string,
	entityType database.EntityType,
) ([]*database.StateEntry, error) {
	container, err := c.getStateContainer()
	if err != nil {
		return nil, err
	}

	partitionKey := azcosmos.NewPartitionKeyString(string(entityType))

	query := "SELECT * FROM c WHERE ARRAY_CONTAINS(@hashes, c.hash) ORDER BY c.createdAt DESC"
	pager := container.NewQueryItemsPager(query, partitionKey, &azcosmos.QueryOptions{
		QueryParameters: []azcosmos.QueryParameter{
			{
				Name:  "@hashes",
				Value: hashes,
			},
		},
	})

	var items []*database.StateEntry

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, pageErr
		}

		for _, bytes := range response.Items {
			item := database.StateEntry{}
			err = json.Unmarshal(bytes, &item)
			if err != nil {
				return nil, err
			}

			items = append(items, &item)
		}
	}

	return items, nil
}

func (c *Cosmo) AddDuplicateKey(
	ctx context.Context,
	key string,
	entityType database.EntityType,
) error {
	container, err := c.getDuplicateContainer()
	if err != nil {
		return err
	}

	partitionKey := azcosmos.NewPartitionKeyString(string(entityType))

	b, err := json.Marshal(database.DuplicateKey{
		Key:        key,
		EntityType: entityType,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = container.CreateItem(ctx, partitionKey, b, nil)

	return c.ignoreDuplicateErr(err)
}

func (c *Cosmo) GetDuplicates(
	ctx context.Context,
	keys []string,
	entityType database.EntityType,
) ([]string, error) {
	container, err := c.getDuplicateContainer()
	if err != nil {
		return nil, err
	}

	partitionKey := azcosmos.NewPartitionKeyString(string(entityType))

	query := "SELECT c.id FROM c WHERE ARRAY_CONTAINS(@keys, c.id)"
	pager := container.NewQueryItemsPager(query, partitionKey, &azcosmos.QueryOptions{
		QueryParameters: []azcosmos.QueryParameter{
			{
				Name:  "@keys",
				Value: keys,
			},
		},
	})

	var found []string

	for pager.More() {
		response, pageErr := pager.NextPage(ctx)
		if pageErr != nil {
			return nil, pageErr
		}

		for _, bytes := range response.Items {
			item := struct {
				ID string `json:"id"`
			}{}
			if err = json.Unmarshal(bytes, &item); err != nil {
				return nil, err
			}

			found = append(found, item.ID)
		}
	}

	return found, nil
}
