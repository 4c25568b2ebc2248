package library_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/sboard/internal/library"
	"github.com/aretw0/sboard/internal/testutils"
	"github.com/aretw0/sboard/pkg/adapters/xmltree"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResolver(t *testing.T) *library.Resolver {
	t.Helper()
	root, err := xmltree.Parse(strings.NewReader(testutils.SampleProject))
	require.NoError(t, err)
	return library.New(root.Child("elements"))
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"Drawing": "tvg",
		"shared":  "tvg",
		"BITMAP":  "png",
		"Sound":   "wav",
		"mp4":     "mp4",
		"MOV":     "MOV",
		"Webm":    "Webm",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, library.Extension(in))
		})
	}
}

func TestResolve_ClipPath(t *testing.T) {
	r := sampleResolver(t)

	el, err := r.Resolve(domain.ElementRef{CategoryID: "2", Name: "clipA"})
	require.NoError(t, err)
	assert.Equal(t, "./library/clips/clipA.mp4", el.Path())
	assert.Equal(t, "mp4", el.Category.Name)
	assert.Equal(t, domain.ElementRef{CategoryID: "2", Name: "clipA"}, el.Ref())

	el, err = r.Resolve(domain.ElementRef{CategoryID: "4", Name: "char_01"})
	require.NoError(t, err)
	assert.Equal(t, "./elements/char/char_01.tvg", el.Path())
}

func TestResolve_Misses(t *testing.T) {
	r := sampleResolver(t)

	tests := []struct {
		name string
		ref  domain.ElementRef
	}{
		{"unknown category", domain.ElementRef{CategoryID: "99", Name: "clipA"}},
		{"unknown element", domain.ElementRef{CategoryID: "2", Name: "clipZ"}},
		{"element of another category", domain.ElementRef{CategoryID: "3", Name: "clipA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.ref)
			assert.ErrorIs(t, err, domain.ErrAssetNotFound)

			var assetErr *domain.AssetError
			require.ErrorAs(t, err, &assetErr)
			assert.Equal(t, tt.ref, assetErr.Ref)
		})
	}
}

func TestCategories(t *testing.T) {
	r := sampleResolver(t)

	cats := r.Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, []string{"2", "3", "4"}, []string{cats[0].UID, cats[1].UID, cats[2].UID})
	assert.Equal(t, "tvg", cats[1].Extension())

	els, err := cats[0].Elements()
	require.NoError(t, err)
	require.Len(t, els, 2)
	assert.Equal(t, "clipB", els[1].Name)
	assert.Equal(t, "./library/clips/clipB.mp4", els[1].Path())

	c, err := r.Category("3")
	require.NoError(t, err)
	assert.Same(t, cats[1], c)
}

func TestResolver_Concurrent(t *testing.T) {
	r := sampleResolver(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			el, err := r.Resolve(domain.ElementRef{CategoryID: "3", Name: "bg_01"})
			assert.NoError(t, err)
			assert.Equal(t, "./library/shared/bg_01.tvg", el.Path())
		}()
	}
	wg.Wait()
}

func TestNew_Nil(t *testing.T) {
	r := library.New(nil)
	assert.Empty(t, r.Categories())
	_, err := r.Resolve(domain.ElementRef{CategoryID: "2", Name: "clipA"})
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}
