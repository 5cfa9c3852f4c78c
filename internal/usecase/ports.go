package usecase

import (
	"github.com/3-lines-studio/greetsite/internal/adapters/cli"
	"github.com/3-lines-studio/greetsite/internal/adapters/fs"
)

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

// ReportOutput is a CLIOutput that can also back a build report.
type ReportOutput interface {
	CLIOutput
	cli.ColorWriter
}

type FileSystem = fs.FileSystem
