package xcodeproj

// Ref is an identifier occurrence with its human-readable comment, rendered
// as `IDENT /* comment */`. A Ref with an empty comment renders bare.
type Ref struct {
	ID      string
	Comment string
}

type objectItem struct {
	key   string
	value interface{}
}

// Object is an insertion-ordered key/value map. The pbxproj format is a
// nested key/value structure where member order is significant, so a plain
// Go map cannot hold it.
type Object struct {
	index map[string]int
	items []objectItem
}

func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// NewObjectWithItems builds an Object preserving the given order. Keys are
// expected pairwise: key, value, key, value...
func NewObjectWithItems(pairs ...interface{}) *Object {
	o := NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1])
	}
	return o
}

// Set inserts a value, or overwrites in place keeping the original position.
func (o *Object) Set(key string, value interface{}) {
	if idx, found := o.index[key]; found {
		o.items[idx].value = value
		return
	}
	o.items = append(o.items, objectItem{key: key, value: value})
	o.index[key] = len(o.items) - 1
}

func (o *Object) Get(key string) (interface{}, bool) {
	idx, found := o.index[key]
	if !found {
		return nil, false
	}
	return o.items[idx].value, true
}

func (o *Object) GetString(key string) string {
	v, found := o.Get(key)
	if !found {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (o *Object) Has(key string) bool {
	_, found := o.index[key]
	return found
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.items)
}

// Foreach visits entries in insertion order.
func (o *Object) Foreach(apply func(key string, value interface{})) {
	if o == nil {
		return
	}
	for _, item := range o.items {
		apply(item.key, item.value)
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.items))
	for _, item := range o.items {
		keys = append(keys, item.key)
	}
	return keys
}
