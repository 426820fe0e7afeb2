// Package regen regenerates the user schemes of an Xcode project or
// workspace: open, regenerate, save. Each step's failure is classified
// with the failure package.
package regen

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/recreate-user-schemes/internal/config"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/failure"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/logging"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/vcs"
	"github.com/fyrsmithlabs/recreate-user-schemes/internal/xcodeproj"
	"go.uber.org/zap"
)

// Options controls a run.
type Options struct {
	// Mode is config.ModeRecreate or config.ModeEnsureShared.
	Mode string
	// User names the xcuserdata/<user>.xcuserdatad directory.
	User string
	// Visible sets isShown for every regenerated scheme.
	Visible bool
}

// ChangeDetector lists files that differ from the enclosing VCS checkout.
type ChangeDetector interface {
	Changes(dir string) ([]vcs.Change, error)
}

// Option configures a Regenerator.
type Option func(*Regenerator)

// WithChangeDetector reports worktree changes under the container after a
// successful save.
func WithChangeDetector(d ChangeDetector) Option {
	return func(r *Regenerator) {
		r.changes = d
	}
}

// Regenerator runs scheme regeneration for one container path.
type Regenerator struct {
	logger  *logging.Logger
	opts    Options
	changes ChangeDetector
}

// New creates a Regenerator. With a nil logger, each Run logs through
// logging.FromContext.
func New(logger *logging.Logger, opts Options, options ...Option) *Regenerator {
	if logger != nil {
		logger = logger.Named("regen")
	}
	if opts.Mode == "" {
		opts.Mode = config.ModeRecreate
	}

	r := &Regenerator{
		logger: logger,
		opts:   opts,
	}
	for _, o := range options {
		o(r)
	}
	return r
}

// run is the state of one Run call.
type run struct {
	*Regenerator
	logger *logging.Logger
}

func (r *Regenerator) loggerFor(ctx context.Context) *logging.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.FromContext(ctx).Named("regen")
}

// Run opens the project or workspace at projectPath, regenerates its user
// schemes and saves them. Errors are *failure.Error values of kind open,
// regeneration or save.
//
// Saving is not transactional: a failure while writing one project leaves
// earlier projects saved and the failing one's user scheme directory
// partially written.
func (r *Regenerator) Run(ctx context.Context, projectPath string) error {
	return (&run{Regenerator: r, logger: r.loggerFor(ctx)}).execute(ctx, projectPath)
}

func (r *run) execute(ctx context.Context, projectPath string) error {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return failure.Open(projectPath, err)
	}
	ctx = logging.WithProjectPath(ctx, abs)

	c, err := openContainer(abs)
	if err != nil {
		return failure.Open(abs, err)
	}

	r.logger.Debug(ctx, "container opened",
		zap.String("mode", r.opts.Mode),
		zap.String("user", r.opts.User),
		zap.Bool("visible", r.opts.Visible),
	)

	switch r.opts.Mode {
	case config.ModeEnsureShared:
		err = r.ensureShared(ctx, abs, c)
	default:
		err = r.recreate(ctx, abs, c)
	}
	if err != nil {
		return err
	}

	r.reportChanges(ctx, abs)
	return nil
}

// recreate regenerates every project before saving any, so an inconsistent
// project fails the run without touching disk.
func (r *run) recreate(ctx context.Context, containerPath string, c container) error {
	before, err := c.schemes()
	if err != nil {
		r.logger.Warn(ctx, "failed to list schemes", zap.Error(err))
	} else {
		r.logInventory(ctx, "existing schemes", containerPath, before, true)
	}

	projects, err := r.regenerate(ctx, containerPath, c)
	if err != nil {
		return err
	}

	for _, p := range projects {
		if err := p.Save(); err != nil {
			return failure.Save(p.Path, err)
		}
		r.logger.Info(ctx, "user schemes recreated",
			zap.String("project", relativeToContainer(p.Path, containerPath)),
			zap.Int("count", len(p.UserSchemes())),
		)
	}

	return nil
}

func (r *run) regenerate(ctx context.Context, containerPath string, c container) ([]*xcodeproj.Project, error) {
	projects, missing, err := c.projects()
	if err != nil {
		return nil, failure.Open(containerPath, err)
	}

	for _, m := range missing {
		r.logger.Warn(ctx, "skipping project, as it is not present",
			zap.String("project", relativeToContainer(m, containerPath)))
	}

	for _, p := range projects {
		if err := p.RecreateUserSchemes(r.opts.User, r.opts.Visible); err != nil {
			return nil, failure.Regeneration(p.Path, err)
		}
		plog := r.logger.With(zap.String("project", relativeToContainer(p.Path, containerPath)))
		for _, s := range p.UserSchemes() {
			plog.Trace(ctx, "scheme built", zap.String("scheme", s.Name))
		}
	}

	return projects, nil
}

// ensureShared leaves containers with shared schemes alone. Otherwise it
// recreates the user schemes, moves them to the shared location and checks
// that at least one shared scheme exists afterwards. Sharing replaces files
// of the same name, so an unreadable inventory stops the run before any
// write.
func (r *run) ensureShared(ctx context.Context, containerPath string, c container) error {
	before, err := c.schemes()
	if err != nil {
		return failure.Open(containerPath, err)
	}

	if len(before) > 0 {
		r.logInventory(ctx, "existing schemes", containerPath, before, true)
		if n := countShared(before); n > 0 {
			r.logger.Info(ctx, "shared schemes present, nothing to do", zap.Int("shared", n))
			return nil
		}
	}

	r.logger.Warn(ctx, "no shared schemes found, generating them; they may differ from the ones in your project")

	projects, err := r.regenerate(ctx, containerPath, c)
	if err != nil {
		return err
	}

	for _, p := range projects {
		if err := p.Save(); err != nil {
			return failure.Save(p.Path, err)
		}
		for _, s := range p.UserSchemes() {
			if err := p.ShareScheme(s.Name); err != nil {
				return failure.Save(p.Path, err)
			}
		}
	}

	reopened, err := openContainer(containerPath)
	if err != nil {
		return failure.Open(containerPath, err)
	}
	after, err := reopened.schemes()
	if err != nil {
		return failure.Open(containerPath, err)
	}

	n := countShared(after)
	if n == 0 {
		return failure.Regeneration(containerPath, errors.New("no schemes generated"))
	}

	r.logInventory(ctx, "created schemes", containerPath, after, false)
	r.logger.Info(ctx, "shared schemes generated", zap.Int("shared", n))
	return nil
}

// logInventory logs one line per scheme, containers in path order, with the
// products each scheme builds.
func (r *run) logInventory(ctx context.Context, msg, containerPath string, schemes map[string][]xcodeproj.SchemeFile, includeUser bool) {
	if !r.logger.Enabled(zap.InfoLevel) {
		return
	}

	paths := make([]string, 0, len(schemes))
	for p := range schemes {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		for _, s := range schemes[p] {
			if !s.Shared && !includeUser {
				continue
			}
			fields := []zap.Field{
				zap.String("container", relativeToContainer(p, containerPath)),
				zap.String("scheme", s.Name),
				zap.Bool("shared", s.Shared),
			}
			if scheme, err := xcodeproj.ReadScheme(s); err != nil {
				r.logger.Warn(ctx, "unreadable scheme", zap.String("path", s.Path), zap.Error(err))
			} else {
				fields = append(fields, zap.String("buildables", strings.Join(scheme.BuildableNames(), ",")))
			}
			r.logger.Info(ctx, msg, fields...)
		}
	}
}

// reportChanges logs worktree changes under the container. The status scan
// walks the whole repository, so it only runs when its output is visible.
func (r *run) reportChanges(ctx context.Context, containerPath string) {
	if r.changes == nil || !r.logger.Enabled(zap.InfoLevel) {
		return
	}

	changes, err := r.changes.Changes(containerPath)
	if errors.Is(err, vcs.ErrNotRepository) {
		r.logger.Debug(ctx, "container is not in a git worktree")
		return
	}
	if err != nil {
		r.logger.Warn(ctx, "failed to read git status", zap.Error(err))
		return
	}

	r.logger.Info(ctx, "worktree changes under container", zap.Int("count", len(changes)))
	for _, c := range changes {
		r.logger.Debug(ctx, "changed", zap.String("entry", c.String()))
	}
}

func countShared(schemes map[string][]xcodeproj.SchemeFile) int {
	var n int
	for _, list := range schemes {
		for _, s := range list {
			if s.Shared {
				n++
			}
		}
	}
	return n
}
