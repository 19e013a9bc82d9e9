package popmenu

import (
	"fmt"
	"slices"
)

// MenuModel is the configuration and item list a MenuController displays.
// Mutations notify observers so a visible menu can relayout.
type MenuModel struct {
	config    MenuConfig
	items     []MenuItem
	observers map[int]func()
	nextID    int
}

func NewMenuModel(config MenuConfig) *MenuModel {
	return &MenuModel{
		config:    config,
		observers: make(map[int]func()),
	}
}

func (m *MenuModel) Config() MenuConfig {
	return m.config
}

func (m *MenuModel) SetConfig(config MenuConfig) {
	m.config = config
	m.notify()
}

// Items returns a copy of the item list.
func (m *MenuModel) Items() []MenuItem {
	return slices.Clone(m.items)
}

// SetItems replaces the item list. The slice is copied.
func (m *MenuModel) SetItems(items []MenuItem) {
	m.items = slices.Clone(items)
	m.notify()
}

func (m *MenuModel) Len() int {
	return len(m.items)
}

// Size is the menu size for the current config and item count.
func (m *MenuModel) Size() Size {
	return MenuSize(m.config, len(m.items))
}

// Validate reports whether the model can be displayed.
func (m *MenuModel) Validate() error {
	if err := m.config.Validate(); err != nil {
		return err
	}
	if len(m.items) == 0 {
		return fmt.Errorf("%w: no items", ErrDegenerateGeometry)
	}
	return nil
}

// OnChange registers fn to run after every SetItems or SetConfig.
// The returned func removes the observer.
func (m *MenuModel) OnChange(fn func()) (remove func()) {
	id := m.nextID
	m.nextID++
	m.observers[id] = fn
	return func() {
		delete(m.observers, id)
	}
}

func (m *MenuModel) notify() {
	ids := make([]int, 0, len(m.observers))
	for id := range m.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		// an earlier observer may have removed a later one
		if fn, ok := m.observers[id]; ok {
			fn()
		}
	}
}
