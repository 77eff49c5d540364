package conf

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	t.Parallel()
	version := FullVersion()
	assert.Equal(t, fmt.Sprintf("%v Copyright (C) %v", VERSION, time.Now().Year()), version)
}

func TestCopyright(t *testing.T) {
	t.Parallel()
	copyright := Copyright()
	assert.Equal(t, fmt.Sprintf("Copyright (C) %v", time.Now().Year()), copyright)
}

func TestCopyrightAt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Copyright (C) 1999", CopyrightAt(time.Date(1999, time.December, 31, 23, 59, 0, 0, time.UTC)))
}
