package repo

import "sync"

// PartitionLocks — реестр мьютексов по имени партиции. Сервисы держат
// мьютекс на весь цикл load→mutate→save, иначе два конкурентных писателя
// по одной партиции молча теряют изменения друг друга (last-write-wins).
type PartitionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPartitionLocks() *PartitionLocks {
	return &PartitionLocks{locks: map[string]*sync.Mutex{}}
}

// Get возвращает мьютекс партиции, создавая его при первом обращении.
func (p *PartitionLocks) Get(partition string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.locks[partition]
	if !ok {
		m = &sync.Mutex{}
		p.locks[partition] = m
	}
	return m
}
