package electorate

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const (
	// dbFileName is the name of the database file
	dbFileName string = "electorate.db"
	// bucketStateName will be used to store the election aggregate
	bucketStateName string = "electorate_state"
	// bucketCouncilsName will be used to archive elected councils
	bucketCouncilsName string = "electorate_councils"
	// stateKey is the fixed key of the election aggregate record
	stateKey string = "state"
)

type BoltOptions struct {
	// DataDir is the default data directory that will be used to store all data on the disk. It's required
	DataDir string

	// Options hold all bolt options
	Options *bolt.Options
}

type BoltStore struct {
	// dataDir is the default data directory that will be used to store all data on the disk
	dataDir string

	// db allows us to manipulate the k/v database
	db *bolt.DB
}

// persistState is a struct holding all requirements
// to persist the election aggregate
type persistState struct {
	// Id is the lifecycle id of the current election
	Id string `json:"id"`

	// Phase is the current period of the election
	Phase Phase `json:"phase"`

	// Round of the current election lifecycle
	Round uint32 `json:"round"`

	// Deadline is the block height ending the current period
	Deadline uint32 `json:"deadline"`

	// Applicants hold the applicant pool
	Applicants map[Address]Stake `json:"applicants"`

	// Candidates hold the frozen candidate pool
	Candidates []Address `json:"candidates"`

	// Votes hold all ballots of the current round
	Votes []*Vote `json:"votes"`

	// AvailableCouncilStakes hold the seat stake snapshot
	AvailableCouncilStakes map[Address]uint32 `json:"availableCouncilStakes"`

	// AvailableBackingStakes hold the backing stake snapshot
	AvailableBackingStakes map[Address]uint32 `json:"availableBackingStakes"`
}

// createDirectoryIfNotExist permits to check if a directory exist
// and create it if not. An error will be return if there is any
func createDirectoryIfNotExist(d string, perm fs.FileMode) error {
	if _, err := os.Stat(d); os.IsNotExist(err) {
		return os.MkdirAll(d, perm)
	}
	return nil
}

// NewBoltStorage instantiate the election store with the provided options
func NewBoltStorage(options BoltOptions) (*BoltStore, error) {
	var (
		db  *bolt.DB
		err error
	)
	if options.DataDir == "" {
		return nil, ErrDataDirRequired
	}
	dbdir := filepath.Join(options.DataDir, "db")
	if err := createDirectoryIfNotExist(dbdir, 0750); err != nil {
		return nil, fmt.Errorf("fail to create directory %s: %w", dbdir, err)
	}
	if db, err = bolt.Open(filepath.Join(dbdir, dbFileName), 0600, options.Options); err != nil {
		return nil, err
	}

	store := &BoltStore{
		dataDir: options.DataDir,
		db:      db,
	}

	if err := store.initializeBuckets(); err != nil {
		return nil, err
	}
	return store, nil
}

// initializeBuckets will initialize all buckets
// required by the electorate
func (b *BoltStore) initializeBuckets() error {
	tx, err := b.db.Begin(true)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil {
			b.db.Logger().Errorf("Rollback failed: %w", err)
		}
	}()

	if _, err := tx.CreateBucketIfNotExists([]byte(bucketStateName)); err != nil {
		return err
	}

	if _, err := tx.CreateBucketIfNotExists([]byte(bucketCouncilsName)); err != nil {
		return err
	}
	return tx.Commit()
}

// Close will close bolt database
func (b *BoltStore) Close() error {
	return b.db.Close()
}

// SaveState stores the whole election aggregate
func (b *BoltStore) SaveState(state *persistState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketStateName)).Put([]byte(stateKey), data)
	})
}

// LoadState restores the election aggregate from disk.
// A nil state is returned when nothing has been stored yet
func (b *BoltStore) LoadState() (*persistState, error) {
	var state *persistState
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketStateName)).Get([]byte(stateKey))
		if data == nil {
			return nil
		}
		state = &persistState{}
		return json.Unmarshal(data, state)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// SaveCouncil archives the council elected by the provided lifecycle
func (b *BoltStore) SaveCouncil(id string, council Council) error {
	data, err := json.Marshal(council)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCouncilsName)).Put([]byte(id), data)
	})
}

// GetCouncil return the archived council of the provided lifecycle.
// An error will be returned when the lifecycle is unknown
func (b *BoltStore) GetCouncil(id string) (Council, error) {
	var council Council
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketCouncilsName)).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("no council archived for election %s", id)
		}
		return json.Unmarshal(data, &council)
	})
	return council, err
}
