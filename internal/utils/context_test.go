package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectContext(t *testing.T) {
	ctx := WithSubject(context.Background(), "42")

	subject, ok := GetSubjectFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "42", subject)

	_, ok = GetSubjectFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetSubjectFromContext(WithSubject(context.Background(), ""))
	assert.False(t, ok)

	_, ok = GetSubjectFromContext(context.WithValue(context.Background(), SubjectCtxKey, 42))
	assert.False(t, ok)

	assert.Equal(t, "subject", SubjectCtxKey.String())
}
