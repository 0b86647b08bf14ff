package predecessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"lastinstance/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Resolver takes fresh inventory snapshots and resolves them against a name.
type Resolver struct {
	inventory process.Inventory
	opts      Options
	log       *logger.Logger
}

// NewResolver creates a Resolver reading from inv.
func NewResolver(inv process.Inventory, opts Options) *Resolver {
	if opts.ExcludeBy == "" {
		opts.ExcludeBy = ExcludePosition
	}
	return &Resolver{
		inventory: inv,
		opts:      opts,
		log:       logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "resolver")),
	}
}

// Options returns the options the resolver was built with.
func (r *Resolver) Options() Options {
	return r.opts
}

func (r *Resolver) snapshot(ctx context.Context) (process.Snapshot, error) {
	snap, err := r.inventory.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Debugln("Inventory snapshot with", len(snap), "processes")
	return snap, nil
}

// ResolvePredecessors returns the older instances of currentName, oldest last.
func (r *Resolver) ResolvePredecessors(ctx context.Context, currentName string) ([]process.ProcessRecord, error) {
	snap, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := Resolve(snap, currentName, r.opts)
	r.log.Infoln("Resolved", len(out), "predecessors of", currentName)
	return out, nil
}

// ResolveSelf determines the caller's own name and its predecessors from a
// single snapshot.
func (r *Resolver) ResolveSelf(ctx context.Context) (string, []process.ProcessRecord, error) {
	snap, err := r.snapshot(ctx)
	if err != nil {
		return "", nil, err
	}

	name, err := r.nameIn(snap)
	if err != nil {
		return "", nil, err
	}

	out := Resolve(snap, name, r.opts)
	r.log.Infoln("Resolved", len(out), "predecessors of", name)
	return name, out, nil
}

// ResolveByName returns every process whose name starts with name. There is no
// positional skip, but the calling process is never part of the result.
func (r *Resolver) ResolveByName(ctx context.Context, name string) ([]process.ProcessRecord, error) {
	snap, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := Match(snap, name, r.opts)
	if r.opts.SelfPID > 0 {
		out = Without(out, r.opts.SelfPID)
	}
	r.log.Infoln("Resolved", len(out), "processes named", name)
	return out, nil
}

// CurrentName returns the name of the calling process as the inventory reports
// it, so that the prefix test compares like with like. When the caller is
// missing from the snapshot the executable base name is used instead.
func (r *Resolver) CurrentName(ctx context.Context) (string, error) {
	snap, err := r.snapshot(ctx)
	if err != nil {
		return "", err
	}

	return r.nameIn(snap)
}

func (r *Resolver) nameIn(snap process.Snapshot) (string, error) {
	if self, ok := snap.Find(r.opts.SelfPID); ok && self.Name != "" {
		return self.Name, nil
	}

	r.log.Debugln("Calling process", r.opts.SelfPID, "not in snapshot, falling back to executable name")
	return ExecutableName()
}

// ExecutableName is the base name of the running executable without a ".exe" suffix.
func ExecutableName() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	base := filepath.Base(exe)
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".exe") {
		base = strings.TrimSuffix(base, ext)
	}
	return base, nil
}
