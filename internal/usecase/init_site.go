package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/greetsite/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Name       string
	Starter    iofs.FS
}

type InitOutput struct {
	Created []string
	Success bool
	Error   error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitSite copies the starter files into an empty or missing project dir.
func (s *InitService) InitSite(input InitInput) InitOutput {
	s.cli.PrintHeader("greetsite init")

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{Error: fmt.Errorf("failed to read directory: %w", err)}
		}
		if len(entries) > 0 {
			return InitOutput{Error: fmt.Errorf("directory '%s' is not empty", input.ProjectDir)}
		}
	}

	name := input.Name
	if name == "" {
		name = templates.DeriveName(input.ProjectDir)
	}
	data := templates.TemplateData{Name: name}

	var created []string
	err := iofs.WalkDir(input.Starter, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := iofs.ReadFile(input.Starter, path)
		if err != nil {
			return fmt.Errorf("failed to read starter file %s: %w", path, err)
		}

		target, isTemplate := templates.ProcessFilename(path)
		target = filepath.Join(input.ProjectDir, filepath.FromSlash(target))

		if err := s.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(target), err)
		}
		if err := s.fs.WriteFile(target, templates.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}

		s.cli.PrintFile(target)
		created = append(created, target)
		return nil
	})
	if err != nil {
		return InitOutput{Created: created, Error: err}
	}

	s.cli.PrintDone(fmt.Sprintf("Created %d files", len(created)))
	return InitOutput{Created: created, Success: true}
}
