package store

import bolt "go.etcd.io/bbolt"

// putRaw stores bytes under key without JSON encoding
func (s *Store) putRaw(key string, data []byte) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketKV).Put([]byte(key), data)
		})
		if err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}
