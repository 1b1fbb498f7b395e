package xcodeproj

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("zulu", "1")
	o.Set("alpha", "2")
	o.Set("mike", "3")
	require.Equal(t, []string{"zulu", "alpha", "mike"}, o.Keys())
}

func TestObjectOverwriteKeepsPosition(t *testing.T) {
	o := NewObjectWithItems("a", "1", "b", "2", "c", "3")
	o.Set("b", "changed")

	require.Equal(t, []string{"a", "b", "c"}, o.Keys())
	v, found := o.Get("b")
	require.True(t, found)
	require.Equal(t, "changed", v)
	require.Equal(t, 3, o.Len())
}

func TestObjectGetString(t *testing.T) {
	o := NewObjectWithItems("name", "Debug", "count", 2)
	require.Equal(t, "Debug", o.GetString("name"))
	require.Equal(t, "", o.GetString("count"), "non-string values read as empty")
	require.Equal(t, "", o.GetString("missing"))
}
