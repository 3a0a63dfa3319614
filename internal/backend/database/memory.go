package database

import "sync"

// MemoryDatabase keeps images in an insertion ordered slice.
// Contents are lost when the process exits.
type MemoryDatabase struct {
	mu     sync.RWMutex
	images []*Image
}

func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{}
}

func (m *MemoryDatabase) CreateImage(image *Image) (*Image, error) {
	if image == nil {
		return nil, ErrNilImage
	}
	id, err := generateID()
	if err != nil {
		return nil, err
	}

	stored := image.clone()
	stored.ID = id

	m.mu.Lock()
	m.images = append(m.images, stored)
	m.mu.Unlock()

	return stored.clone(), nil
}

func (m *MemoryDatabase) DeleteImage(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.images[:0]
	for _, image := range m.images {
		if image.ID != id {
			kept = append(kept, image)
		}
	}
	// drop references held by the tail so removed images can be collected
	for i := len(kept); i < len(m.images); i++ {
		m.images[i] = nil
	}
	m.images = kept
	return nil
}

func (m *MemoryDatabase) DeleteAllImages() error {
	m.mu.Lock()
	m.images = nil
	m.mu.Unlock()
	return nil
}

func (m *MemoryDatabase) GetAllImages() ([]*Image, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	images := make([]*Image, 0, len(m.images))
	for _, image := range m.images {
		images = append(images, image.clone())
	}
	return images, nil
}

func (m *MemoryDatabase) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.images), nil
}

func (m *MemoryDatabase) Close() error {
	return m.DeleteAllImages()
}
