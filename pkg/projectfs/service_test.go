package projectfs

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/projfs/pkg/adapters/moduleloader"
	"github.com/user/projfs/pkg/adapters/osfilesystem"
	"github.com/user/projfs/pkg/adapters/ziparchiver"
	"github.com/user/projfs/pkg/mocks"
)

// newOSService returns a Service over a fresh temporary project root.
func newOSService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	svc := New(osfilesystem.New(), ziparchiver.New(""), moduleloader.NewRegistry(), nil)
	return svc, root
}

func dir(root, path string) DirectoryInput {
	return DirectoryInput{ProjectRoot: root, Path: path}
}

func write(root, path, content string) FileWriteInput {
	return FileWriteInput{DirectoryInput: dir(root, path), Content: content}
}

func TestService_ListDirectoriesExcludesFiles(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.MakeDirectory(dir(root, "/d1")))
	require.NoError(t, svc.MakeDirectory(dir(root, "/d2")))
	require.NoError(t, svc.WriteFile(write(root, "/f1.txt", "file")))

	names, err := svc.ListDirectories(dir(root, "/"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"d1", "d2"}, names)
}

func TestService_ListDirectoriesEmpty(t *testing.T) {
	svc, root := newOSService(t)

	names, err := svc.ListDirectories(dir(root, "/"))
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestService_ListDirectoriesMissing(t *testing.T) {
	svc, root := newOSService(t)

	_, err := svc.ListDirectories(dir(root, "/missing"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_MakeDirectoryIsIdempotent(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.MakeDirectory(dir(root, "/a/b/c")))
	require.NoError(t, svc.MakeDirectory(dir(root, "/a/b/c")))
	require.DirExists(t, filepath.Join(root, "a", "b", "c"))
}

func TestService_MakeDirectoryFailureIsOperationError(t *testing.T) {
	svc, root := newOSService(t)
	require.NoError(t, svc.WriteFile(write(root, "/blocker", "x")))

	err := svc.MakeDirectory(dir(root, "/blocker/sub"))
	require.Error(t, err)

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, root+"/blocker/sub", opErr.Path)
	require.NotEmpty(t, opErr.Error())
}

func TestService_RemoveDirectory(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.MakeDirectory(dir(root, "/tree/nested")))
	require.NoError(t, svc.WriteFile(write(root, "/tree/nested/f.txt", "x")))

	require.NoError(t, svc.RemoveDirectory(dir(root, "/tree")))
	require.NoDirExists(t, filepath.Join(root, "tree"))
}

func TestService_RemoveDirectoryMissingIsNoop(t *testing.T) {
	svc, root := newOSService(t)

	for _, p := range []string{"/missing", "/missing/deeper", "/tree"} {
		require.NoError(t, svc.RemoveDirectory(dir(root, p)), p)
	}
}

func TestService_RemoveFileMissingFails(t *testing.T) {
	svc, root := newOSService(t)

	for _, p := range []string{"/missing.txt", "/nested/missing.txt"} {
		err := svc.RemoveFile(dir(root, p))
		require.ErrorIs(t, err, ErrNotFound, p)
	}
}

func TestService_RemoveFile(t *testing.T) {
	svc, root := newOSService(t)
	require.NoError(t, svc.WriteFile(write(root, "/a.txt", "hi")))

	require.NoError(t, svc.RemoveFile(dir(root, "/a.txt")))
	require.NoFileExists(t, filepath.Join(root, "a.txt"))

	require.ErrorIs(t, svc.RemoveFile(dir(root, "/a.txt")), ErrNotFound)
}

func TestService_WriteThenReadText(t *testing.T) {
	svc, root := newOSService(t)

	for _, content := range []string{"hi", "line one\nline two\n", "日本語 ✓"} {
		require.NoError(t, svc.WriteFile(write(root, "/round.txt", content)))
		got, err := svc.ReadFileText(dir(root, "/round.txt"))
		require.NoError(t, err)
		require.Equal(t, content, got)
	}
}

func TestService_WriteFileRequiresContent(t *testing.T) {
	svc, root := newOSService(t)

	err := svc.WriteFile(write(root, "/empty.txt", ""))
	require.ErrorIs(t, err, ErrContentRequired)
	require.NoFileExists(t, filepath.Join(root, "empty.txt"))
}

func TestService_WriteFileMissingParent(t *testing.T) {
	svc, root := newOSService(t)

	err := svc.WriteFile(write(root, "/no/such/dir/f.txt", "x"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ReadFileBinary(t *testing.T) {
	svc, root := newOSService(t)
	data := []byte{0x00, 0xff, 0x10, 0x80}
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), data, 0644))

	got, err := svc.ReadFileBinary(dir(root, "/blob.bin"))
	require.NoError(t, err)
	require.Equal(t, data, got)

	_, err = svc.ReadFileBinary(dir(root, "/missing.bin"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ReadFileTextReplacesInvalidUTF8(t *testing.T) {
	svc, root := newOSService(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.txt"), []byte("ok\xffok"), 0644))

	got, err := svc.ReadFileText(dir(root, "/bad.txt"))
	require.NoError(t, err)
	require.Equal(t, "ok\uFFFDok", got)

	_, err = svc.ReadFileText(dir(root, "/missing.txt"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_CopyFile(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.WriteFile(write(root, "/a.txt", "hi")))
	require.NoError(t, svc.CopyFile(CopyInput{ProjectRoot: root, Source: "/a.txt", Target: "/b.txt"}))

	got, err := svc.ReadFileText(dir(root, "/b.txt"))
	require.NoError(t, err)
	require.Equal(t, "hi", got)
}

func TestService_CopyFileOverwrites(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.WriteFile(write(root, "/a.txt", "new")))
	require.NoError(t, svc.WriteFile(write(root, "/b.txt", "old and longer")))
	require.NoError(t, svc.CopyFile(CopyInput{ProjectRoot: root, Source: "/a.txt", Target: "/b.txt"}))

	got, err := svc.ReadFileText(dir(root, "/b.txt"))
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestService_CopyFileMissingSource(t *testing.T) {
	svc, root := newOSService(t)

	err := svc.CopyFile(CopyInput{ProjectRoot: root, Source: "/missing.txt", Target: "/b.txt"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_CopyFileOntoItself(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.WriteFile(write(root, "/a.txt", "precious")))
	require.NoError(t, svc.CopyFile(CopyInput{ProjectRoot: root, Source: "/a.txt", Target: "/./a.txt"}))

	got, err := svc.ReadFileText(dir(root, "/a.txt"))
	require.NoError(t, err)
	require.Equal(t, "precious", got)
}

func TestService_CopyFileMissingTargetParentNamesTarget(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.WriteFile(write(root, "/a.txt", "hi")))
	err := svc.CopyFile(CopyInput{ProjectRoot: root, Source: "/a.txt", Target: "/missing/b.txt"})
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), root+"/missing/b.txt")
	require.NotContains(t, err.Error(), root+"/a.txt")
}

func TestService_CopyDirectory(t *testing.T) {
	svc, root := newOSService(t)

	files := map[string]string{
		"/A/top.txt":          "top",
		"/A/x/one.txt":        "one",
		"/A/x/y/two.txt":      "two",
		"/A/z/three.markdown": "three",
	}
	require.NoError(t, svc.MakeDirectory(dir(root, "/A/x/y")))
	require.NoError(t, svc.MakeDirectory(dir(root, "/A/z")))
	for p, content := range files {
		require.NoError(t, svc.WriteFile(write(root, p, content)))
	}

	require.NoError(t, svc.CopyDirectory(CopyInput{ProjectRoot: root, Source: "/A", Target: "/B"}))

	for p := range files {
		rel := p[len("/A"):]
		want, err := svc.ReadFileText(dir(root, "/A"+rel))
		require.NoError(t, err)
		got, err := svc.ReadFileText(dir(root, "/B"+rel))
		require.NoError(t, err)
		require.Equal(t, want, got, rel)
	}

	names, err := svc.ListDirectories(dir(root, "/B"))
	require.NoError(t, err)
	sort.Strings(names)
	require.Equal(t, []string{"x", "z"}, names)
}

func TestService_CopyDirectoryOntoItself(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.MakeDirectory(dir(root, "/D")))
	require.NoError(t, svc.WriteFile(write(root, "/D/f.txt", "precious")))
	require.NoError(t, svc.CopyDirectory(CopyInput{ProjectRoot: root, Source: "/D", Target: "/D"}))

	got, err := svc.ReadFileText(dir(root, "/D/f.txt"))
	require.NoError(t, err)
	require.Equal(t, "precious", got)
}

func TestService_CopyDirectoryIntoItselfFails(t *testing.T) {
	svc, root := newOSService(t)

	require.NoError(t, svc.MakeDirectory(dir(root, "/A")))
	require.NoError(t, svc.WriteFile(write(root, "/A/f.txt", "x")))

	err := svc.CopyDirectory(CopyInput{ProjectRoot: root, Source: "/A", Target: "/A/sub"})
	require.ErrorIs(t, err, fs.ErrInvalid)
	require.NotErrorIs(t, err, ErrNotFound)
	require.NoDirExists(t, filepath.Join(root, "A", "sub"))
}

func TestService_CopyDirectoryMissingSource(t *testing.T) {
	svc, root := newOSService(t)

	err := svc.CopyDirectory(CopyInput{ProjectRoot: root, Source: "/missing", Target: "/B"})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoDirExists(t, filepath.Join(root, "B"))
}

func TestService_ZipFolder(t *testing.T) {
	if !ziparchiver.IsZipAvailable() {
		t.Skip("zip not installed")
	}
	svc, root := newOSService(t)

	require.NoError(t, svc.MakeDirectory(dir(root, "/site/assets")))
	require.NoError(t, svc.WriteFile(write(root, "/site/index.html", "<html></html>")))
	require.NoError(t, svc.WriteFile(write(root, "/site/assets/app.js", "console.log(1)")))

	err := svc.ZipFolder(ZipInput{
		CopyInput: CopyInput{ProjectRoot: root, Source: "/site", Target: "/dist/archives"},
		Name:      "site",
	})
	require.NoError(t, err)

	archivePath := filepath.Join(root, "dist", "archives", "site.zip")
	require.FileExists(t, archivePath)

	r, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	require.Contains(t, names, "index.html")
	require.Contains(t, names, "assets/app.js")
}

func TestService_ZipFolderMissingBinary(t *testing.T) {
	root := t.TempDir()
	svc := New(osfilesystem.New(), ziparchiver.New(filepath.Join(root, "no-zip-here")), nil, nil)
	require.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0755))

	err := svc.ZipFolder(ZipInput{
		CopyInput: CopyInput{ProjectRoot: root, Source: "/src", Target: "/out"},
		Name:      "bundle",
	})

	var zipErr *ZipError
	require.ErrorAs(t, err, &zipErr)
	require.NotEmpty(t, zipErr.Error())
	// The target directory is created before the archiver runs
	require.DirExists(t, filepath.Join(root, "out"))
}

func TestService_ImportModule(t *testing.T) {
	root := t.TempDir()
	modules := moduleloader.NewRegistry()
	modules.Register(root+"/plugins/hello", map[string]any{"Greeting": "hi", "Answer": 42})
	svc := New(osfilesystem.New(), ziparchiver.New(""), modules, nil)

	exports, err := svc.ImportModule(dir(root, "/plugins/hello"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{"Greeting": "hi", "Answer": 42}, exports)

	_, err = svc.ImportModule(dir(root, "/plugins/missing"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ImportModuleWithoutLoader(t *testing.T) {
	svc := New(mocks.NewFileSystem(), &mocks.Archiver{}, nil, nil)

	_, err := svc.ImportModule(dir("/project", "/plugins/hello"))
	require.ErrorIs(t, err, ErrLoaderUnavailable)
}

func TestService_ConcurrentUnrelatedPaths(t *testing.T) {
	svc, root := newOSService(t)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := "/worker" + string(rune('a'+i))
			if err := svc.MakeDirectory(dir(root, d)); err != nil {
				errs <- err
				return
			}
			if err := svc.WriteFile(write(root, d+"/f.txt", d)); err != nil {
				errs <- err
				return
			}
			got, err := svc.ReadFileText(dir(root, d+"/f.txt"))
			if err != nil {
				errs <- err
				return
			}
			if got != d {
				errs <- errors.New("content mismatch in " + d)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	names, err := svc.ListDirectories(dir(root, "/"))
	require.NoError(t, err)
	require.Len(t, names, 8)
}

func TestNewDefault(t *testing.T) {
	svc, modules := NewDefault()
	root := t.TempDir()

	modules.Register(root+"/m", map[string]any{"K": "v"})
	exports, err := svc.ImportModule(dir(root, "/m"))
	require.NoError(t, err)
	require.Equal(t, "v", exports["K"])

	require.NoError(t, svc.WriteFile(write(root, "/a.txt", "hi")))
	got, err := svc.ReadFileText(dir(root, "/a.txt"))
	require.NoError(t, err)
	require.Equal(t, "hi", got)
}
