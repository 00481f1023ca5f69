package store

import (
	bolt "go.etcd.io/bbolt"

	"src.marq.sh/pkg/eval/vals"
	. "src.marq.sh/pkg/store/storedefs"
	"src.marq.sh/pkg/yamlval"
)

const bucketSharedValue = "shared_value"

func init() {
	initDB["initialize shared value table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSharedValue))
		return err
	}
}

// SharedValue gets the value with the given name.
func (s *dbStore) SharedValue(name string) (vals.Value, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSharedValue))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoSharedValue
		}
		// v is only valid within the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return vals.None, err
	}
	return yamlval.Decode(data)
}

// SetSharedValue sets the value with the given name. Values that have no YAML
// form cannot be stored.
func (s *dbStore) SetSharedValue(name string, v vals.Value) error {
	data, err := yamlval.Encode(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSharedValue))
		return b.Put([]byte(name), data)
	})
}

// DelSharedValue deletes the value with the given name. Deleting a value that
// does not exist is not an error.
func (s *dbStore) DelSharedValue(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSharedValue))
		return b.Delete([]byte(name))
	})
}

// SharedValueNames returns the names of all values, in lexicographical order.
func (s *dbStore) SharedValueNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSharedValue))
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
