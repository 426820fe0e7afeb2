// Package logging is the zap-backed logger used by a regeneration run.
//
// A Logger writes to stderr (or Config.Writer) in console or JSON encoding
// and adds a Trace level below Debug for per-target detail. Every
// context-taking method appends the run.id and project.path fields stored
// on the context by WithRunID and WithProjectPath.
//
// Stdout belongs to the failure diagnostic; nothing in this package writes
// to it.
//
//	logger, err := logging.NewFromSettings("info", "console", false, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithRunID(ctx, uuid.NewString())
//	logger.Info(ctx, "user schemes recreated", zap.Int("count", n))
//
// Tests assert on output through TestLogger, which records entries with
// zaptest/observer:
//
//	tl := logging.NewTestLogger()
//	r := regen.New(tl.Logger, opts)
//	tl.AssertLogged(t, zapcore.InfoLevel, "user schemes recreated")
package logging
