package schema

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces identifier values for properties that declare a
// Generator name and receive no caller-supplied value on insert.
type IDGenerator interface {
	Generate() (any, error)
	Type() string
}

// UUIDGenerator generates UUID v4 values.
type UUIDGenerator struct{}

func (UUIDGenerator) Generate() (any, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("schema: generate uuid: %w", err)
	}
	return id.String(), nil
}

func (UUIDGenerator) Type() string { return "uuid" }

// ULIDGenerator generates monotonic ULID values.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) Generate() (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		return nil, fmt.Errorf("schema: generate ulid: %w", err)
	}
	return id.String(), nil
}

func (g *ULIDGenerator) Type() string { return "ulid" }

// GeneratorRegistry maps generator names to implementations.
type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[string]IDGenerator
}

func NewGeneratorRegistry() *GeneratorRegistry {
	r := &GeneratorRegistry{generators: make(map[string]IDGenerator)}
	r.Register(UUIDGenerator{})
	r.Register(NewULIDGenerator())
	return r
}

func (r *GeneratorRegistry) Register(g IDGenerator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[g.Type()] = g
}

func (r *GeneratorRegistry) Generate(generatorType string) (any, error) {
	r.mu.RLock()
	g, ok := r.generators[generatorType]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("schema: unknown id generator %q", generatorType)
	}
	return g.Generate()
}
