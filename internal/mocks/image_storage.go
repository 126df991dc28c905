package mocks

import (
	"io"
	"sync"
)

// ImageStorage keeps stored images in memory
type ImageStorage struct {
	mu        sync.Mutex
	Files     map[string][]byte
	SaveErr   error
	DeleteErr error
}

// NewImageStorage creates an empty storage
func NewImageStorage() *ImageStorage {
	return &ImageStorage{Files: map[string][]byte{}}
}

func (s *ImageStorage) Save(name string, r io.Reader) (int64, error) {
	if s.SaveErr != nil {
		return 0, s.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Files[name] = data
	return int64(len(data)), nil
}

func (s *ImageStorage) Exists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Files[name]
	return ok
}

func (s *ImageStorage) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Files, name)
	return nil
}

func (s *ImageStorage) URL(name string) string {
	return "/imagenes/" + name
}
