package keybinding

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
)

// Errors returned by Bindings.
var (
	ErrNoCommands       = errors.New("binding has no commands")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrInvalidScope     = errors.New("invalid scope")
	ErrDuplicateBinding = errors.New("key already bound in scope")
	ErrNotBound         = errors.New("key not bound")
	ErrInvalidKey       = errors.New("invalid key")
)

// Bindings is the key binding table of one owner. It is safe for
// concurrent use.
type Bindings struct {
	mu       sync.RWMutex
	owner    Owner
	bindings map[key.Key][]Binding
}

// New creates an empty table whose bindings run on owner.
func New(owner Owner) *Bindings {
	return &Bindings{
		owner:    owner,
		bindings: make(map[key.Key][]Binding),
	}
}

// Owner returns the owner of the table.
func (b *Bindings) Owner() Owner {
	return b.owner
}

// Add binds k to cmds in scope. An invalid key is ignored. Binding a key
// that is already bound in exactly that scope is an error; use Replace
// or ReplaceCommands instead.
func (b *Bindings) Add(k key.Key, scope Scope, cmds ...command.Command) error {
	return b.AddBinding(k, Binding{Commands: cmds, Scope: scope})
}

// AddBinding is like Add with an explicit binding, which may name an
// owner other than the table owner.
func (b *Bindings) AddBinding(k key.Key, binding Binding) error {
	if !k.IsValid() {
		return nil
	}
	if err := validate(binding); err != nil {
		return fmt.Errorf("binding %s: %w", k, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.bindings[k] {
		if existing.Scope == binding.Scope {
			return fmt.Errorf("%w: %s in %s", ErrDuplicateBinding, k, binding.Scope)
		}
	}
	b.bindings[k] = append(b.bindings[k], binding.clone())
	return nil
}

func validate(binding Binding) error {
	if len(binding.Commands) == 0 {
		return ErrNoCommands
	}
	if binding.Scope == 0 || binding.Scope&^AllScopes != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScope, binding.Scope)
	}
	for _, c := range binding.Commands {
		if !c.IsValid() {
			return fmt.Errorf("%w: %d", ErrInvalidCommand, c)
		}
	}
	return nil
}

// Replace moves every binding of oldKey to newKey. Bindings of newKey in
// the same scopes are overwritten.
func (b *Bindings) Replace(oldKey, newKey key.Key) error {
	if !newKey.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidKey, newKey)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	moved, ok := b.bindings[oldKey]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotBound, oldKey)
	}
	if oldKey == newKey {
		return nil
	}
	delete(b.bindings, oldKey)

	kept := b.bindings[newKey][:0]
	for _, existing := range b.bindings[newKey] {
		if !hasScope(moved, existing.Scope) {
			kept = append(kept, existing)
		}
	}
	b.bindings[newKey] = append(kept, moved...)
	return nil
}

func hasScope(list []Binding, scope Scope) bool {
	for _, bd := range list {
		if bd.Scope == scope {
			return true
		}
	}
	return false
}

// ReplaceCommands sets the commands of k in scope, adding the binding if
// it does not exist.
func (b *Bindings) ReplaceCommands(k key.Key, scope Scope, cmds ...command.Command) error {
	if !k.IsValid() {
		return nil
	}
	binding := Binding{Commands: cmds, Scope: scope}
	if err := validate(binding); err != nil {
		return fmt.Errorf("binding %s: %w", k, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.bindings[k]
	for i := range list {
		if list[i].Scope == scope {
			list[i].Commands = append([]command.Command(nil), cmds...)
			return nil
		}
	}
	b.bindings[k] = append(list, binding.clone())
	return nil
}

// Remove deletes the binding of k in exactly scope. It reports whether a
// binding was removed.
func (b *Bindings) Remove(k key.Key, scope Scope) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.bindings[k]
	for i := range list {
		if list[i].Scope == scope {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(b.bindings, k)
			} else {
				b.bindings[k] = list
			}
			return true
		}
	}
	return false
}

// Clear removes every binding.
func (b *Bindings) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bindings = make(map[key.Key][]Binding)
}

// ClearCommands removes every binding whose command list equals cmds
// and returns how many were removed.
func (b *Bindings) ClearCommands(cmds ...command.Command) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for k, list := range b.bindings {
		kept := list[:0]
		for _, bd := range list {
			if command.Equal(bd.Commands, cmds) {
				removed++
				continue
			}
			kept = append(kept, bd)
		}
		if len(kept) == 0 {
			delete(b.bindings, k)
		} else {
			b.bindings[k] = kept
		}
	}
	return removed
}

// TryGet returns the binding of k whose scope matches scope, resolving
// scopes in priority order.
func (b *Bindings) TryGet(k key.Key, scope Scope) (Binding, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list := b.bindings[k]
	if len(list) == 0 {
		return Binding{}, false
	}
	for _, s := range resolutionOrder {
		if !scope.Matches(s) {
			continue
		}
		for _, bd := range list {
			if bd.Scope.Matches(s) {
				return bd.clone(), true
			}
		}
	}
	return Binding{}, false
}

// GetCommands returns the commands bound to k in the highest priority
// scope, or nil.
func (b *Bindings) GetCommands(k key.Key) []command.Command {
	bd, ok := b.TryGet(k, AllScopes)
	if !ok {
		return nil
	}
	return bd.Commands
}

// GetKeysFromCommands returns the keys bound to exactly cmds, sorted by
// key code.
func (b *Bindings) GetKeysFromCommands(cmds ...command.Command) []key.Key {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var keys []key.Key
	for k, list := range b.bindings {
		for _, bd := range list {
			if command.Equal(bd.Commands, cmds) {
				keys = append(keys, k)
				break
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].KeyCode() < keys[j].KeyCode() })
	return keys
}

// All returns every binding sorted by key code, then scope.
func (b *Bindings) All() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries := make([]Entry, 0, len(b.bindings))
	for k, list := range b.bindings {
		for _, bd := range list {
			entries = append(entries, Entry{Key: k, Binding: bd.clone()})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Key != entries[j].Key {
			return entries[i].Key.KeyCode() < entries[j].Key.KeyCode()
		}
		return entries[i].Binding.Scope < entries[j].Binding.Scope
	})
	return entries
}

// Len returns the number of bindings.
func (b *Bindings) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, list := range b.bindings {
		n += len(list)
	}
	return n
}

// Invoke runs the binding of k matching scope. The table lock is not
// held while commands run, so handlers may change bindings. It reports
// false when no binding matched.
func (b *Bindings) Invoke(k key.Key, scope Scope) (command.Result, bool) {
	bd, ok := b.TryGet(k, scope)
	if !ok {
		return command.Unsupported, false
	}
	return bd.Invoke(b.owner, k), true
}
