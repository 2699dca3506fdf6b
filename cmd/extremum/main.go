package main

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/storage"
)

const defaultDBPath = "extremum.db"

func main() {
	cmd := newRootCommand(os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// storeOptions are shared by every command that touches stored runs.
type storeOptions struct {
	kind   string
	dbPath string
}

func newRootCommand(out io.Writer) *cobra.Command {
	so := &storeOptions{}
	cmd := &cobra.Command{
		Use:           "extremum",
		Short:         "Search a function of one variable for its minimum or maximum with a genetic algorithm",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	fs := cmd.PersistentFlags()
	fs.StringVar(&so.kind, "store", storage.KindSQLite, "run store backend: memory or sqlite")
	fs.StringVar(&so.dbPath, "db-path", defaultDBPath, "path of the sqlite database")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newRunCommand(so),
		newRunsCommand(so),
		newShowCommand(so),
		newFunctionsCommand(),
	)
	return cmd
}

// openStore builds and initializes the configured store. The returned func
// releases it.
func openStore(ctx context.Context, so *storeOptions) (storage.Store, func(), error) {
	store, err := storage.NewStore(so.kind, so.dbPath, 0)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, nil, fmt.Errorf("init %s store: %w", so.kind, err)
	}
	closeFn := func() {
		if err := storage.CloseIfSupported(store); err != nil {
			klog.FromContext(ctx).Error(err, "closing store", "kind", so.kind)
		}
	}
	return store, closeFn, nil
}
