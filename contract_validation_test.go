package profile

import (
	"context"
	"reflect"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContractCompliance validates that the exported API keeps its shape
func TestContractCompliance(t *testing.T) {
	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType := reflect.TypeOf((*error)(nil)).Elem()
	paramsType := reflect.TypeOf(Params{})
	responseType := reflect.TypeOf(&HTTPResponse{})

	t.Run("NewClient signature", func(t *testing.T) {
		funcType := reflect.TypeOf(NewClient)

		require.Equal(t, 1, funcType.NumIn(), "NewClient should take 1 parameter")
		assert.Equal(t, reflect.TypeOf(Config{}), funcType.In(0))
		require.Equal(t, 2, funcType.NumOut(), "NewClient should return 2 values")
		assert.Equal(t, reflect.TypeOf(&Client{}), funcType.Out(0))
		assert.Equal(t, errorType, funcType.Out(1))
	})

	t.Run("Configure signature", func(t *testing.T) {
		funcType := reflect.TypeOf(Configure)

		require.Equal(t, 1, funcType.NumIn())
		require.Equal(t, 1, funcType.NumOut())
		assert.Equal(t, errorType, funcType.Out(0))
	})

	t.Run("Operation methods", func(t *testing.T) {
		clientValue := reflect.ValueOf(&Client{})

		for _, name := range allOperations {
			methodName := string(unicode.ToUpper(rune(name[0]))) + name[1:]
			method := clientValue.MethodByName(methodName)
			require.True(t, method.IsValid(), "method %s not found", methodName)

			methodType := method.Type()
			require.Equal(t, 2, methodType.NumIn(), "%s should take (ctx, params)", methodName)
			assert.Equal(t, ctxType, methodType.In(0), methodName)
			assert.Equal(t, paramsType, methodType.In(1), methodName)

			require.Equal(t, 2, methodType.NumOut(), "%s should return 2 values", methodName)
			assert.Equal(t, errorType, methodType.Out(1), methodName)
			if name == "removeGroupPost" {
				assert.Equal(t, reflect.TypeOf(true), methodType.Out(0), methodName)
			} else {
				assert.Equal(t, responseType, methodType.Out(0), methodName)
			}
		}
	})

	t.Run("Error types", func(t *testing.T) {
		var _ error = &ConfigurationError{}
		var _ error = &MissingParameterError{}
		var _ error = &TransportError{}
	})
}
