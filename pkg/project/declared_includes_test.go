//go:build unit

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/orphans/internal/base"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReader(ctrl *gomock.Controller) (*realReader, *mocks.MockFS) {
	mockFS := mocks.NewMockFS(ctrl)
	return &realReader{
		Base: base.NewBase(base.NewBaseParams{
			FS:     mockFS,
			Config: config.DefaultConfig(),
		}),
	}, mockFS
}

func TestReader_DeclaredIncludes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader, mockFS := newTestReader(ctrl)

	manifest := `<Project xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup>
    <Compile Include="Foo.cs" />
    <Compile Include="Sub\Bar.cs" />
  </ItemGroup>
</Project>`
	mockFS.EXPECT().ReadFile(filepath.Join("/work/App", "App.csproj")).Return([]byte(manifest), nil)

	includes, err := reader.DeclaredIncludes("/work/App", "App.csproj")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("/work/App", "Foo.cs"),
		filepath.Join("/work/App", "Sub", "Bar.cs"),
	}, includes)
}

func TestReader_DeclaredIncludes_EmptyItemGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader, mockFS := newTestReader(ctrl)

	manifest := `<Project xmlns="http://schemas.microsoft.com/developer/msbuild/2003"><ItemGroup></ItemGroup></Project>`
	mockFS.EXPECT().ReadFile(filepath.Join("/work/App", "App.csproj")).Return([]byte(manifest), nil)

	includes, err := reader.DeclaredIncludes("/work/App", "App.csproj")
	require.NoError(t, err)
	assert.Empty(t, includes)
}

func TestReader_DeclaredIncludes_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(mockFS *mocks.MockFS)
		expectedErr error
	}{
		{
			name: "missing manifest",
			setupMocks: func(mockFS *mocks.MockFS) {
				mockFS.EXPECT().ReadFile(gomock.Any()).Return(nil, os.ErrNotExist)
				mockFS.EXPECT().IsNotExist(os.ErrNotExist).Return(true)
			},
			expectedErr: ErrManifestNotFound,
		},
		{
			name: "unreadable manifest",
			setupMocks: func(mockFS *mocks.MockFS) {
				mockFS.EXPECT().ReadFile(gomock.Any()).Return(nil, os.ErrPermission)
				mockFS.EXPECT().IsNotExist(os.ErrPermission).Return(false)
			},
			expectedErr: ErrManifestRead,
		},
		{
			name: "malformed manifest",
			setupMocks: func(mockFS *mocks.MockFS) {
				mockFS.EXPECT().ReadFile(gomock.Any()).Return([]byte("<Project><ItemGroup></Project>"), nil)
			},
			expectedErr: ErrManifestParse,
		},
		{
			name: "manifest without root",
			setupMocks: func(mockFS *mocks.MockFS) {
				mockFS.EXPECT().ReadFile(gomock.Any()).Return([]byte("   "), nil)
			},
			expectedErr: ErrNoRootElement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader, mockFS := newTestReader(ctrl)
			tt.setupMocks(mockFS)

			includes, err := reader.DeclaredIncludes("/work/App", "App.csproj")
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, includes)
		})
	}
}
