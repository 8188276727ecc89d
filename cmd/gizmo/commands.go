package main

import (
	"flag"
	"io"

	"axis-gizmo/internal/commands"
	"axis-gizmo/internal/engineconfig"
	"axis-gizmo/internal/gizmo"
	"axis-gizmo/internal/graphics"
	"axis-gizmo/internal/logger"
	"axis-gizmo/internal/node"
	"axis-gizmo/internal/scene"
	"axis-gizmo/internal/viewer"
)

// newRegistry wires the view and dump subcommands. dump writes to out.
func newRegistry(log *logger.Logger, out io.Writer) *commands.Registry {
	reg := commands.NewRegistry()

	view := flag.NewFlagSet("view", flag.ContinueOnError)
	viewDef := view.String("gizmo", gizmo.DefPath, "gizmo definition (YAML)")
	viewPrefs := view.String("prefs", engineconfig.ViewPrefsPath, "view preferences (JSON)")
	reg.Register("view", "open a window showing the axis gizmo", view, func() error {
		return runView(log, *viewDef, *viewPrefs)
	})

	dump := flag.NewFlagSet("dump", flag.ContinueOnError)
	dumpDef := dump.String("gizmo", gizmo.DefPath, "gizmo definition (YAML)")
	dumpContent := dump.Bool("content", false, "dump only the content subtree (origin and axis)")
	dumpNode := dump.String("node", "", "dump only the named subtree, placed at its world pose")
	reg.Register("dump", "print the scene graph as YAML", dump, func() error {
		name := *dumpNode
		if name == "" && *dumpContent {
			name = scene.ContentNodeName
		}
		return runDump(log, out, *dumpDef, name)
	})

	return reg
}

// loadScene builds the scene from the gizmo definition at defPath (defaults when missing).
func loadScene(log *logger.Logger, defPath string) (*scene.Scene, error) {
	def, err := gizmo.LoadDef(defPath)
	if err != nil {
		return nil, err
	}
	scn, err := scene.New(def)
	if err != nil {
		return nil, err
	}
	st := scn.Stats()
	log.Logf("scene built from %s: %d nodes, %d geometries, %d lights", defPath, st.Nodes, st.Geometries, st.Lights)
	return scn, nil
}

// runDump writes the scene built from defPath to out. A non-empty name restricts the output to
// that subtree, detached from the scene with its world pose.
func runDump(log *logger.Logger, out io.Writer, defPath, name string) error {
	scn, err := loadScene(log, defPath)
	if err != nil {
		return err
	}
	root := scn.Root
	if name != "" {
		if root, err = scn.Root.Extract(name); err != nil {
			return err
		}
	}
	return node.Encode(out, root)
}

// loadPrefs reads the view preferences, logging why defaults are used when the file is unusable.
func loadPrefs(log *logger.Logger, path string) engineconfig.ViewPrefs {
	prefs, err := engineconfig.Load(path)
	if err != nil {
		log.Logf("%v; using default view prefs", err)
	}
	return prefs
}

func runView(log *logger.Logger, defPath, prefsPath string) error {
	scn, err := loadScene(log, defPath)
	if err != nil {
		return err
	}
	prefs := loadPrefs(log, prefsPath)
	bg, err := gizmo.ParseColor(prefs.Background)
	if err != nil {
		log.Logf("background %q: %v; using gray", prefs.Background, err)
		bg, _ = gizmo.ParseColor(engineconfig.Default().Background)
	}
	fps := prefs.TargetFPS
	if fps <= 0 {
		fps = engineconfig.Default().TargetFPS
	}
	v := viewer.New(scn, prefs)
	graphics.Run(bg, int32(fps), v.Update, v.Draw)
	return nil
}
