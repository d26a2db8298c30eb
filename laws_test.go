package validated_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated"
)

func invalidInt(message, raw string) validated.Field[int] {
	return validated.Validate(func(string) (int, error) {
		return 0, errors.New(message)
	}, raw)
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }

	t.Run("applies only to valid", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validated.Valid(10), validated.Map(double, validated.Valid(5)))
		assert.Equal(t, validated.Initial[int](), validated.Map(double, validated.Initial[int]()))
		assert.Equal(t, validated.Unvalidated[int]("x"), validated.Map(double, validated.Unvalidated[int]("x")))
		assert.Equal(t, invalidInt("e", "x"), validated.Map(double, invalidInt("e", "x")))
	})

	t.Run("identity law", func(t *testing.T) {
		t.Parallel()
		id := func(n int) int { return n }
		for _, f := range []validated.Field[int]{
			validated.Initial[int](),
			validated.Unvalidated[int]("7"),
			validated.Valid(7),
			invalidInt("e", "7"),
		} {
			assert.Equal(t, f, validated.Map(id, f))
		}
	})

	t.Run("composition law", func(t *testing.T) {
		t.Parallel()
		f := func(n int) int { return n + 1 }
		g := func(n int) int { return n * 3 }
		fg := func(n int) int { return f(g(n)) }
		for _, v := range []validated.Field[int]{
			validated.Initial[int](),
			validated.Unvalidated[int]("7"),
			validated.Valid(7),
			invalidInt("e", "7"),
		} {
			assert.Equal(t, validated.Map(fg, v), validated.Map(f, validated.Map(g, v)))
		}
	})
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	adult := func(n int) validated.Field[int] {
		if n < 18 {
			return invalidInt("must be at least 18", strconv.Itoa(n))
		}
		return validated.Valid(n)
	}

	t.Run("valid feeds fn and returns its result verbatim", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validated.Valid(30), validated.AndThen(adult, validated.Valid(30)))
		assert.Equal(t, invalidInt("must be at least 18", "12"), validated.AndThen(adult, validated.Valid(12)))
	})

	t.Run("non-valid short-circuits with its own payload", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validated.Initial[int](), validated.AndThen(adult, validated.Initial[int]()))
		assert.Equal(t, validated.Unvalidated[int]("x"), validated.AndThen(adult, validated.Unvalidated[int]("x")))
		assert.Equal(t, invalidInt("e", "x"), validated.AndThen(adult, invalidInt("e", "x")))
	})

	t.Run("left identity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, adult(30), validated.AndThen(adult, validated.Valid(30)))
		assert.Equal(t, adult(3), validated.AndThen(adult, validated.Valid(3)))
	})

	t.Run("right identity", func(t *testing.T) {
		t.Parallel()
		for _, f := range []validated.Field[int]{
			validated.Initial[int](),
			validated.Unvalidated[int]("7"),
			validated.Valid(7),
			invalidInt("e", "7"),
		} {
			assert.Equal(t, f, validated.AndThen(validated.Valid[int], f))
		}
	})

	t.Run("associativity", func(t *testing.T) {
		t.Parallel()
		g := func(n int) validated.Field[int] { return validated.Valid(n + 1) }
		for _, f := range []validated.Field[int]{
			validated.Valid(30),
			validated.Valid(3),
			invalidInt("e", "x"),
			validated.Initial[int](),
		} {
			left := validated.AndThen(g, validated.AndThen(adult, f))
			right := validated.AndThen(func(n int) validated.Field[int] {
				return validated.AndThen(g, adult(n))
			}, f)
			assert.Equal(t, left, right)
		}
	})
}

func TestAndMap(t *testing.T) {
	t.Parallel()

	addOne := func(n int) int { return n + 1 }

	t.Run("failing accumulator wins, field never inspected", func(t *testing.T) {
		t.Parallel()
		acc := validated.Validate(func(string) (func(int) int, error) {
			return nil, errors.New("e")
		}, "x")
		got := validated.AndMap(validated.Valid(5), acc)
		assert.Equal(t, invalidInt("e", "x"), got)
	})

	t.Run("pending accumulator wins over invalid field", func(t *testing.T) {
		t.Parallel()
		got := validated.AndMap(invalidInt("e", "x"), validated.Unvalidated[func(int) int]("raw"))
		assert.Equal(t, validated.Unvalidated[int]("raw"), got)

		got = validated.AndMap(validated.Valid(5), validated.Initial[func(int) int]())
		assert.Equal(t, validated.Initial[int](), got)
	})

	t.Run("valid accumulator proceeds to map over the field", func(t *testing.T) {
		t.Parallel()
		got := validated.AndMap(invalidInt("e2", "y"), validated.Valid(addOne))
		assert.Equal(t, invalidInt("e2", "y"), got)

		got = validated.AndMap(validated.Valid(5), validated.Valid(addOne))
		assert.Equal(t, validated.Valid(6), got)
	})
}

type person struct {
	Name string
	Age  int
}

func TestAggregation(t *testing.T) {
	t.Parallel()

	build := func(name string) func(int) person {
		return func(age int) person {
			return person{Name: name, Age: age}
		}
	}

	t.Run("all valid builds the aggregate", func(t *testing.T) {
		t.Parallel()
		name := validated.Valid("Ann")
		age := validated.Valid(30)

		got := validated.AndMap(age, validated.AndMap(name, validated.Valid(build)))
		require.True(t, got.IsValid())
		assert.Equal(t, person{Name: "Ann", Age: 30}, got.WithDefault(person{}))
	})

	t.Run("later-applied failing field wins", func(t *testing.T) {
		t.Parallel()
		name := validated.Valid("Ann")
		age := validated.Validate(func(string) (int, error) {
			return 0, errors.New("Must be a number")
		}, "abc")

		got := validated.AndMap(age, validated.AndMap(name, validated.Valid(build)))
		msg, ok := got.Message().Get()
		require.True(t, ok)
		assert.Equal(t, "Must be a number", msg)
		assert.Equal(t, "abc", got.Render(func(person) string { return "" }))
	})

	t.Run("earliest-applied failure wins when several fields fail", func(t *testing.T) {
		t.Parallel()
		name := validated.Validate(func(string) (string, error) {
			return "", errors.New("Required")
		}, "")
		age := validated.Validate(func(string) (int, error) {
			return 0, errors.New("Must be a number")
		}, "abc")

		// The name failure enters the accumulator first; the final AndMap
		// sees a non-Valid accumulator and returns it unchanged, so the
		// age failure is discarded.
		got := validated.AndMap(age, validated.AndMap(name, validated.Valid(build)))
		msg, ok := got.Message().Get()
		require.True(t, ok)
		assert.Equal(t, "Required", msg)
		assert.Equal(t, "", got.Render(func(person) string { return "" }))
	})
}
