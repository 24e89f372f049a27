package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/projfs/pkg/projectfs"
)

func (s *session) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "ls",
			Usage:     l10n.T("List the directories under a path"),
			ArgsUsage: "<path>",
			Action:    s.listDirectories,
		},
		{
			Name:      "mkdir",
			Usage:     l10n.T("Create a directory and any missing parents"),
			ArgsUsage: "<path>",
			Action:    s.makeDirectory,
		},
		{
			Name:      "rmdir",
			Usage:     l10n.T("Remove a directory recursively"),
			ArgsUsage: "<path>",
			Action:    s.removeDirectory,
		},
		{
			Name:      "cpdir",
			Usage:     l10n.T("Copy a directory recursively"),
			ArgsUsage: "<source> <target>",
			Action:    s.copyDirectory,
		},
		{
			Name:      "zip",
			Usage:     l10n.T("Archive a directory into <target>/<name>.zip"),
			ArgsUsage: "<source> <target> <name>",
			Action:    s.zipFolder,
		},
		{
			Name:      "cat",
			Usage:     l10n.T("Print a file"),
			ArgsUsage: "<path>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "binary",
					Aliases: []string{"b"},
					Usage:   l10n.T("Write raw bytes without UTF-8 decoding"),
				},
			},
			Action: s.readFile,
		},
		{
			Name:      "write",
			Usage:     l10n.T("Replace a file's contents (reads stdin when content is omitted)"),
			ArgsUsage: "<path> [content]",
			Action:    s.writeFile,
		},
		{
			Name:      "rm",
			Usage:     l10n.T("Remove a file"),
			ArgsUsage: "<path>",
			Action:    s.removeFile,
		},
		{
			Name:      "cp",
			Usage:     l10n.T("Copy a file, overwriting the target"),
			ArgsUsage: "<source> <target>",
			Action:    s.copyFile,
		},
		{
			Name:      "exports",
			Usage:     l10n.T("Load an allowed plugin and list its exports"),
			ArgsUsage: "<path>",
			Action:    s.importModule,
		},
		{
			Name:   "version",
			Usage:  l10n.T("Show version information"),
			Action: s.version,
		},
	}
}

// expectArgs fails unless exactly n positional arguments were given.
func expectArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return l10n.E("%s: expected %d argument(s), got %d", c.Command.Name, n, c.NArg())
	}
	return nil
}

func (s *session) dir(path string) projectfs.DirectoryInput {
	return projectfs.DirectoryInput{ProjectRoot: s.cfg.ProjectRoot, Path: path}
}

func (s *session) copy(source, target string) projectfs.CopyInput {
	return projectfs.CopyInput{ProjectRoot: s.cfg.ProjectRoot, Source: source, Target: target}
}

func (s *session) listDirectories(c *cli.Context) error {
	if err := expectArgs(c, 1); err != nil {
		return err
	}
	names, err := s.svc.ListDirectories(s.dir(c.Args().Get(0)))
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func (s *session) makeDirectory(c *cli.Context) error {
	if err := expectArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().Get(0)
	if err := s.svc.MakeDirectory(s.dir(path)); err != nil {
		return err
	}
	s.log.Info("Created directory %s", path)
	return nil
}

func (s *session) removeDirectory(c *cli.Context) error {
	if err := expectArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().Get(0)
	if err := s.svc.RemoveDirectory(s.dir(path)); err != nil {
		return err
	}
	s.log.Info("Removed directory %s", path)
	return nil
}

func (s *session) copyDirectory(c *cli.Context) error {
	if err := expectArgs(c, 2); err != nil {
		return err
	}
	source, target := c.Args().Get(0), c.Args().Get(1)
	if err := s.svc.CopyDirectory(s.copy(source, target)); err != nil {
		return err
	}
	s.log.Info("Copied %s to %s", source, target)
	return nil
}

func (s *session) zipFolder(c *cli.Context) error {
	if err := expectArgs(c, 3); err != nil {
		return err
	}
	in := projectfs.ZipInput{
		CopyInput: s.copy(c.Args().Get(0), c.Args().Get(1)),
		Name:      c.Args().Get(2),
	}
	if err := s.svc.ZipFolder(in); err != nil {
		return err
	}
	s.log.Info("Archive written to %s", projectfs.FormatDirectory(in.Target)+in.Name+".zip")
	return nil
}

func (s *session) readFile(c *cli.Context) error {
	if err := expectArgs(c, 1); err != nil {
		return err
	}
	in := s.dir(c.Args().Get(0))

	if c.Bool("binary") {
		data, err := s.svc.ReadFileBinary(in)
		if err != nil {
			return err
		}
		_, err = c.App.Writer.Write(data)
		return err
	}

	text, err := s.svc.ReadFileText(in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.App.Writer, text)
	return err
}

func (s *session) writeFile(c *cli.Context) error {
	if c.NArg() != 1 && c.NArg() != 2 {
		return l10n.E("%s: expected %d or %d argument(s), got %d", c.Command.Name, 1, 2, c.NArg())
	}
	path := c.Args().Get(0)

	content := c.Args().Get(1)
	if c.NArg() == 1 {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(data)
	}

	err := s.svc.WriteFile(projectfs.FileWriteInput{DirectoryInput: s.dir(path), Content: content})
	if err != nil {
		return err
	}
	s.log.Info("Wrote %d bytes to %s", len(content), path)
	return nil
}

func (s *session) removeFile(c *cli.Context) error {
	if err := expectArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().Get(0)
	if err := s.svc.RemoveFile(s.dir(path)); err != nil {
		return err
	}
	s.log.Info("Removed file %s", path)
	return nil
}

func (s *session) copyFile(c *cli.Context) error {
	if err := expectArgs(c, 2); err != nil {
		return err
	}
	source, target := c.Args().Get(0), c.Args().Get(1)
	if err := s.svc.CopyFile(s.copy(source, target)); err != nil {
		return err
	}
	s.log.Info("Copied %s to %s", source, target)
	return nil
}

func (s *session) importModule(c *cli.Context) error {
	if err := expectArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().Get(0)
	exports, err := s.svc.ImportModule(s.dir(path))
	if err != nil {
		s.log.Error("Failed to load plugin %s: %s", path, err)
		return err
	}
	s.log.Debug("Loaded plugin %s", path)

	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(c.App.Writer, "%s\t%T\n", name, exports[name])
	}
	return nil
}

func (s *session) version(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, l10n.F("projfs version %s", version))
	return nil
}
