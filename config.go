package rbtree

import "fmt"

// DuplicatePolicy decides what Insert does with a key which is already present.
type DuplicatePolicy uint8

const (
	// RejectDuplicates lets Insert fail with ErrDuplicateKey for present keys.
	RejectDuplicates DuplicatePolicy = iota
	// AllowDuplicates stores equal keys side by side. Equal keys descend to the
	// right on insert; Search and Delete operate on the first equal key met on
	// the way down from the root.
	AllowDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject"
	case AllowDuplicates:
		return "allow"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", uint8(p))
}

// Config configures a tree.
//
// The zero value is a valid configuration and rejects duplicate keys.
type Config struct {
	Duplicates DuplicatePolicy
}

func (cfg Config) validate() error {
	if cfg.Duplicates > AllowDuplicates {
		return fmt.Errorf("%w: unknown duplicate policy %d", ErrIllegalArguments, cfg.Duplicates)
	}
	return nil
}
