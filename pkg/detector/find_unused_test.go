//go:build unit

package detector

import (
	"errors"
	"testing"

	"github.com/lerenn/orphans/internal/base"
	"github.com/lerenn/orphans/pkg/config"
	projectmocks "github.com/lerenn/orphans/pkg/project/mocks"
	"github.com/lerenn/orphans/pkg/sourcetree"
	sourcetreemocks "github.com/lerenn/orphans/pkg/sourcetree/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDetector(ctrl *gomock.Controller, cfg config.Config) (
	*realDetector, *sourcetreemocks.MockEnumerator, *projectmocks.MockReader,
) {
	mockEnumerator := sourcetreemocks.NewMockEnumerator(ctrl)
	mockReader := projectmocks.NewMockReader(ctrl)
	return &realDetector{
		Base:       base.NewBase(base.NewBaseParams{Config: cfg}),
		enumerator: mockEnumerator,
		reader:     mockReader,
	}, mockEnumerator, mockReader
}

func TestDetector_FindUnused(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		declared   []string
		expected   []string
	}{
		{
			name:       "every file declared",
			candidates: []string{"/p/Foo.cs", "/p/Bar.cs"},
			declared:   []string{"/p/Bar.cs", "/p/Foo.cs"},
			expected:   nil,
		},
		{
			name:       "one undeclared file",
			candidates: []string{"/p/Foo.cs", "/p/Bar.cs", "/p/Baz.cs"},
			declared:   []string{"/p/Foo.cs", "/p/Bar.cs"},
			expected:   []string{"/p/Baz.cs"},
		},
		{
			name:       "nothing declared",
			candidates: []string{"/p/Foo.cs", "/p/Bar.cs"},
			declared:   nil,
			expected:   []string{"/p/Foo.cs", "/p/Bar.cs"},
		},
		{
			name:       "unrelated declarations have no effect",
			candidates: []string{"/p/Foo.cs", "/p/Bar.cs"},
			declared:   []string{"/p/Missing.cs", "/elsewhere/Foo.cs"},
			expected:   []string{"/p/Foo.cs", "/p/Bar.cs"},
		},
		{
			name:       "backslash separators in declarations",
			candidates: []string{"/p/Sub/Foo.cs"},
			declared:   []string{`/p\Sub\Foo.cs`},
			expected:   nil,
		},
		{
			name:       "declarations are compared case insensitively",
			candidates: []string{"/p/Foo.cs"},
			declared:   []string{"/p/foo.CS"},
			expected:   nil,
		},
		{
			name:       "dot segments are cleaned",
			candidates: []string{"/p/Sub/Foo.cs"},
			declared:   []string{"/p/Other/../Sub/./Foo.cs"},
			expected:   nil,
		},
		{
			name:       "duplicate candidates are reported once",
			candidates: []string{"/p/Foo.cs", "/p/FOO.cs"},
			declared:   nil,
			expected:   []string{"/p/Foo.cs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			detector, mockEnumerator, mockReader := newTestDetector(ctrl, config.DefaultConfig())

			mockEnumerator.EXPECT().Candidates("/p").Return(tt.candidates, nil)
			mockReader.EXPECT().DeclaredIncludes("/p", "App.csproj").Return(tt.declared, nil)

			unused, err := detector.FindUnused("/p", "App.csproj")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, unused)
		})
	}
}

func TestDetector_FindUnused_CaseSensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultConfig()
	cfg.CaseSensitive = true
	detector, mockEnumerator, mockReader := newTestDetector(ctrl, cfg)

	mockEnumerator.EXPECT().Candidates("/p").Return([]string{"/p/Foo.cs", "/p/Bar.cs"}, nil)
	mockReader.EXPECT().DeclaredIncludes("/p", "App.csproj").Return([]string{"/p/foo.CS", "/p/Bar.cs"}, nil)

	unused, err := detector.FindUnused("/p", "App.csproj")
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/Foo.cs"}, unused)
}

func TestDetector_FindUnused_AddingDeclarationRemovesFile(t *testing.T) {
	candidates := []string{"/p/A.cs", "/p/B.cs", "/p/C.cs"}

	for i, declared := range candidates {
		ctrl := gomock.NewController(t)

		detector, mockEnumerator, mockReader := newTestDetector(ctrl, config.DefaultConfig())
		mockEnumerator.EXPECT().Candidates("/p").Return(candidates, nil)
		mockReader.EXPECT().DeclaredIncludes("/p", "App.csproj").Return([]string{declared}, nil)

		unused, err := detector.FindUnused("/p", "App.csproj")
		require.NoError(t, err)
		assert.NotContains(t, unused, declared)
		assert.Len(t, unused, len(candidates)-1, "declaring candidate %d", i)

		ctrl.Finish()
	}
}

func TestDetector_FindUnused_Errors(t *testing.T) {
	t.Run("enumeration failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		detector, mockEnumerator, _ := newTestDetector(ctrl, config.DefaultConfig())
		mockEnumerator.EXPECT().Candidates("/p").Return(nil, sourcetree.ErrProjectDirNotFound)

		unused, err := detector.FindUnused("/p", "App.csproj")
		assert.ErrorIs(t, err, sourcetree.ErrProjectDirNotFound)
		assert.Nil(t, unused)
	})

	t.Run("manifest failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manifestErr := errors.New("manifest failure")
		detector, mockEnumerator, mockReader := newTestDetector(ctrl, config.DefaultConfig())
		mockEnumerator.EXPECT().Candidates("/p").Return([]string{"/p/Foo.cs"}, nil)
		mockReader.EXPECT().DeclaredIncludes("/p", "App.csproj").Return(nil, manifestErr)

		unused, err := detector.FindUnused("/p", "App.csproj")
		assert.ErrorIs(t, err, manifestErr)
		assert.Nil(t, unused)
	})
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		caseSensitive bool
		expected      string
	}{
		{name: "slash path", input: "/p/Foo.cs", expected: "/p/foo.cs"},
		{name: "backslash path", input: `C:\p\Sub\Foo.cs`, expected: "c:/p/sub/foo.cs"},
		{name: "mixed separators", input: `/p\Sub/Foo.cs`, expected: "/p/sub/foo.cs"},
		{name: "dot segments", input: "/p/./a/../Foo.cs", expected: "/p/foo.cs"},
		{name: "case preserved", input: "/p/Foo.cs", caseSensitive: true, expected: "/p/Foo.cs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input, tt.caseSensitive))
		})
	}
}
