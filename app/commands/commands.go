// Package commands implements the blogsite command line.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blogsite/app/config"
	"blogsite/app/markdown"
	"blogsite/app/repositories"
	"blogsite/app/services"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Version is reported by the version command
var Version = "1.0.0"

// CLI runs subcommands against one configuration
type CLI struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer
	in  *bufio.Reader
	now func() time.Time
}

// New creates a CLI that talks on stdin and stdout
func New(cfg config.Config, log *zap.Logger) *CLI {
	return NewWithIO(cfg, log, os.Stdin, os.Stdout)
}

// NewWithIO creates a CLI with its own input and output
func NewWithIO(cfg config.Config, log *zap.Logger, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		cfg: cfg,
		log: log,
		out: out,
		in:  bufio.NewReader(in),
		now: time.Now,
	}
}

// HandleCommand runs the subcommand named by args[0] and returns an exit code
func (c *CLI) HandleCommand(args []string) int {
	if len(args) < 1 {
		c.printHelp()
		return 1
	}

	cmd := strings.ToLower(args[0])
	switch cmd {
	case "serve":
		return c.serve()
	case "init":
		return c.initDb()
	case "clean":
		return c.clean()
	case "backup":
		return c.backup()
	case "restore":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "Error: backup file path required for restore")
			return 1
		}
		return c.restore(args[1])
	case "import":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "Error: posts file path required for import")
			return 1
		}
		return c.importPosts(args[1])
	case "posts":
		return c.listPosts()
	case "version":
		fmt.Fprintf(c.out, "blogsite version %s\n", Version)
		return 0
	case "help":
		c.printHelp()
		return 0
	default:
		fmt.Fprintf(c.out, "Unknown command: %s\n\n", args[0])
		c.printHelp()
		return 1
	}
}

func (c *CLI) printHelp() {
	helpText := `Usage: blogsite <command> [arguments]

Commands:
  serve                 Run the blog web server
  init                  Initialize a new empty database
  clean                 Remove the blog database
  backup                Create a backup of the database
  restore <file>        Restore the database from a backup
  import <posts.yaml>   Import posts, skipping ones already stored
  posts                 List every stored post
  version               Show version information
  help                  Display this help message
`
	fmt.Fprintln(c.out, helpText)
}

// confirm asks a yes/no question, defaulting to no
func (c *CLI) confirm(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", question)
	response, _ := c.in.ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}

func (c *CLI) dbPath() string {
	return c.cfg.Database.Path
}

func (c *CLI) dbExists() bool {
	_, err := os.Stat(c.dbPath())
	return err == nil
}

// onDisk reports whether the configured database lives on disk, printing
// why not otherwise
func (c *CLI) onDisk() bool {
	if c.cfg.Database.InMemory {
		fmt.Fprintln(c.out, "Database is configured in memory; nothing on disk to manage")
		return false
	}
	return true
}

// openService opens the configured store and builds a BlogService on it
func (c *CLI) openService() (*services.BlogService, *badger.DB, error) {
	db, err := repositories.Open(c.dbPath(), c.cfg.Database.InMemory)
	if err != nil {
		return nil, nil, err
	}
	service := services.NewBlogService(repositories.NewBadgerPostRepository(db), markdown.NewRenderer())
	return service, db, nil
}

func (c *CLI) clean() int {
	if !c.onDisk() {
		return 1
	}
	if !c.dbExists() {
		fmt.Fprintln(c.out, "Database is already clean (does not exist)")
		return 0
	}

	if !c.confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Fprintln(c.out, "Operation cancelled")
		return 1
	}

	if err := os.RemoveAll(c.dbPath()); err != nil {
		fmt.Fprintf(c.out, "Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Fprintln(c.out, "Database cleaned successfully")
	return 0
}

func (c *CLI) initDb() int {
	if !c.onDisk() {
		return 1
	}
	if c.dbExists() {
		fmt.Fprintln(c.out, "Database already exists. Use 'clean' first if you want to reinitialize.")
		return 1
	}

	if err := os.MkdirAll(c.dbPath(), 0755); err != nil {
		fmt.Fprintf(c.out, "Failed to create database directory: %v\n", err)
		return 1
	}

	db, err := repositories.Open(c.dbPath(), false)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to initialize database: %v\n", err)
		return 1
	}
	defer db.Close()

	fmt.Fprintln(c.out, "Database initialized successfully")
	return 0
}

func (c *CLI) backup() int {
	if !c.onDisk() {
		return 1
	}
	if !c.dbExists() {
		fmt.Fprintln(c.out, "No database exists to backup")
		return 1
	}

	backupDir := c.cfg.Database.BackupDir
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		fmt.Fprintf(c.out, "Failed to create backup directory: %v\n", err)
		return 1
	}

	db, err := repositories.Open(c.dbPath(), false)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", c.now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to create backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		fmt.Fprintf(c.out, "Failed to backup database: %v\n", err)
		return 1
	}

	c.log.Info("database backed up", zap.String("file", backupFile))
	fmt.Fprintf(c.out, "Database backed up successfully to %s\n", backupFile)
	return 0
}

func (c *CLI) restore(backupFile string) int {
	if !c.onDisk() {
		return 1
	}

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Fprintf(c.out, "Backup file does not exist: %s\n", backupFile)
		return 1
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		fmt.Fprintf(c.out, "Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Fprintf(c.out, "Backup file is empty: %s\n", backupFile)
		return 1
	}

	if c.dbExists() {
		if !c.confirm("Existing database found. Do you want to replace it?") {
			fmt.Fprintln(c.out, "Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(c.dbPath()); err != nil {
			fmt.Fprintf(c.out, "Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	if err := os.MkdirAll(c.dbPath(), 0755); err != nil {
		fmt.Fprintf(c.out, "Failed to create database directory: %v\n", err)
		return 1
	}

	db, err := repositories.Open(c.dbPath(), false)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	if err := load(db, f); err != nil {
		fmt.Fprintf(c.out, "Failed to restore database: %v\n", err)
		return 1
	}

	c.log.Info("database restored", zap.String("file", backupFile))
	fmt.Fprintln(c.out, "Database restored successfully")
	return 0
}

// load reads a backup into db. badger panics on some malformed input.
func load(db *badger.DB, r io.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic occurred during restore: %v", p)
		}
	}()
	return db.Load(r, 256)
}
