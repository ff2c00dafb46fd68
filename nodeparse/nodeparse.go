// Package nodeparse is the subprocess parser collaborator: it obtains the
// generic parse tree by running the npm css parser under node.
//
// The exchange is a blocking request/response: the full source is written
// to the child's stdin and the complete JSON tree read from its stdout.
// Callers needing timeouts wrap the call.
package nodeparse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/css-format/cssfmt/debug"
	"github.com/css-format/cssfmt/ir"
	"github.com/css-format/cssfmt/parse"
)

// EnvDir is the default directory holding the parser's node environment.
const EnvDir = ".cssfmt-nodeenv"

// prog reads CSS on stdin and writes the parse tree as JSON on stdout,
// exiting non-zero with a diagnostic on a syntax error.
const prog = `const css = require(process.env.CSSFMT_NODE_MODULES + '/css');
const fs = require('fs');
const src = fs.readFileSync('/dev/stdin').toString('UTF-8');
console.log(JSON.stringify(css.parse(src, {silent: false})));
`

// ExitError reports a parser subprocess failure, carrying the child's
// diagnostics verbatim.
type ExitError struct {
	Status int
	Stdout string
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("unexpected returncode (%d)\nstdout:\n%s\nstderr:\n%s\n",
		e.Status, e.Stdout, e.Stderr)
}

// Unwrap ties subprocess failures to the common parse error kind.
func (e *ExitError) Unwrap() error { return parse.ErrParse }

// Parser implements parse.Parser by shelling out to node.
type Parser struct {
	log *zap.Logger
	dir string

	// run executes a prepared command; swapped out in tests.
	run func(*exec.Cmd) error
}

// New creates a subprocess parser rooted at dir ("" means EnvDir). A nil
// logger disables logging.
func New(log *zap.Logger, dir string) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	if dir == "" {
		dir = EnvDir
	}
	return &Parser{log: log.Named("nodeparse"), dir: dir, run: (*exec.Cmd).Run}
}

// EnsureEnv installs the npm css package under the parser's environment
// directory once. Concurrent callers may race the install; the marker file
// is only created after a successful install, so a present marker always
// means a usable environment.
func (p *Parser) EnsureEnv() error {
	marker := filepath.Join(p.dir, "installed")
	if _, err := os.Stat(marker); err == nil {
		return nil
	}
	p.log.Debug("installing node environment", zap.String("dir", p.dir))
	cmd := exec.Command("npm", "install", "--prefix", p.dir, "css")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if debug.Exec() {
		debug.Logf("nodeparse: %s\n", strings.Join(cmd.Args, " "))
	}
	if err := p.run(cmd); err != nil {
		return multierr.Append(
			fmt.Errorf("installing css parser: %w", err),
			os.RemoveAll(p.dir),
		)
	}
	f, err := os.Create(marker)
	if err != nil {
		return err
	}
	return f.Close()
}

// Parse implements parse.Parser.
func (p *Parser) Parse(src []byte) ([]ir.Raw, error) {
	if err := p.EnsureEnv(); err != nil {
		return nil, err
	}
	cmd := exec.Command("node", "-e", prog)
	cmd.Env = append(os.Environ(),
		"CSSFMT_NODE_MODULES="+filepath.Join(p.dir, "node_modules"))
	cmd.Stdin = bytes.NewReader(src)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.Stdout, cmd.Stderr = stdout, stderr
	if debug.Exec() {
		debug.Logf("nodeparse: %s\n", strings.Join(cmd.Args, " "))
	}
	if err := p.run(cmd); err != nil {
		status := -1
		var xerr *exec.ExitError
		if errors.As(err, &xerr) {
			status = xerr.ExitCode()
		}
		p.log.Debug("parser subprocess failed",
			zap.Int("status", status), zap.String("stderr", stderr.String()))
		return nil, &ExitError{
			Status: status,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
	}
	if debug.Tree() {
		debug.Logf("raw parse tree:\n%s\n", stdout.String())
	}
	return decode(stdout.Bytes())
}

// decode unpacks the JSON AST and returns the stylesheet's top-level rules.
func decode(d []byte) ([]ir.Raw, error) {
	var doc struct {
		Stylesheet struct {
			Rules []map[string]any `json:"rules"`
		} `json:"stylesheet"`
	}
	if err := json.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("decoding parse tree: %w", err)
	}
	rules := make([]ir.Raw, 0, len(doc.Stylesheet.Rules))
	for _, r := range doc.Stylesheet.Rules {
		rules = append(rules, ir.Raw(r))
	}
	return rules, nil
}
