package pbtext_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/protoview/pkg/pbtext"
)

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	root := pbtext.Parse(sampleDocument).Root()

	var names []string
	err := pbtext.Walk(root, func(v pbtext.View) error {
		names = append(names, v.Name())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"",
		"root_message",
		"repeated_sub_message",
		"repeated_sub_message",
		"root_message2",
	}, names)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	root := pbtext.Parse(sampleDocument).Root()
	errStop := errors.New("stop")

	visited := 0
	err := pbtext.Walk(root, func(v pbtext.View) error {
		visited++
		if v.Name() == "repeated_sub_message" {
			return errStop
		}
		return nil
	})

	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 3, visited)
}

func TestWalkWithContext_EnterLeave(t *testing.T) {
	t.Parallel()

	root := pbtext.Parse("a {\n b {\n }\n}\n").Root()

	var events []string
	err := pbtext.WalkWithContext(root,
		func(v pbtext.View) error {
			events = append(events, "enter:"+v.Name())
			return nil
		},
		func(v pbtext.View) error {
			events = append(events, "leave:"+v.Name())
			return nil
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter:", "enter:a", "enter:b", "leave:b", "leave:a", "leave:",
	}, events)
}

func TestWalk_ZeroView(t *testing.T) {
	t.Parallel()

	called := false
	err := pbtext.Walk(pbtext.View{}, func(pbtext.View) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestAllKeys(t *testing.T) {
	t.Parallel()

	root := pbtext.Parse(sampleDocument).Root()

	assert.Equal(t, []string{
		"root_message",
		"repeated_sub_message",
		"repeated_sub_message",
		"root_message2",
	}, pbtext.AllKeys(root))

	msg, ok := root.Element("root_message")
	require.True(t, ok)
	assert.Equal(t, []string{"repeated_sub_message", "repeated_sub_message"}, pbtext.AllKeys(msg))
}

func TestDepth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pbtext.Depth(pbtext.Parse("a: 1\n").Root()))
	assert.Equal(t, 2, pbtext.Depth(pbtext.Parse(sampleDocument).Root()))
	assert.Equal(t, 3, pbtext.Depth(pbtext.Parse("a {\n b {\n c {\n }\n }\n}\nd {\n}\n").Root()))
}
