package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeSize(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"Scalar", Shape{}, 1},
		{"Nil", nil, 1},
		{"Vector", Shape{3}, 3},
		{"Matrix", Shape{3, 4}, 12},
		{"Empty axis", Shape{2, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Size())
		})
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "()", Shape{}.String())
	assert.Equal(t, "(3,)", Shape{3}.String())
	assert.Equal(t, "(3, 4)", Shape{3, 4}.String())
}

func TestShapeEqual(t *testing.T) {
	assert.True(t, Shape{3}.Equal(Shape{3}))
	assert.True(t, Shape(nil).Equal(Shape{}))
	assert.False(t, Shape{3}.Equal(Shape{4}))
	assert.False(t, Shape{3}.Equal(Shape{3, 1}))
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{0, 2}.Validate())

	err := Shape{2, -1}.Validate()
	var se *ErrInvalidShape
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Axis)
}

func TestShapeCloneDoesNotAlias(t *testing.T) {
	s := Shape{1, 2}
	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 1, s[0])
}
