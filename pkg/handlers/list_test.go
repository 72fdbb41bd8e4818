package handlers

import (
	"strings"
	"testing"

	"github.com/arthur-debert/slideshow/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPrintsEveryRoot(t *testing.T) {
	ctx, _, out := newTestContext(t, options.Options{List: true}, packFiles)

	require.NoError(t, NewList(ctx).Run())

	want := strings.Join([]string{
		"Installed templates in '/config/templates':",
		"  (none)",
		"Installed templates in '/install/templates':",
		"  s6.txt (/install/templates/s6/s6.txt)",
		"Installed templates in '/work/templates':",
		"  (none)",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}
