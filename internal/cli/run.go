package cli

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
	"github.com/spf13/cobra"

	"github.com/novalith-hq/httpbridge/internal/logger"
	"github.com/novalith-hq/httpbridge/pkg/scripting"
)

var runCmd = &cobra.Command{
	Use:   "run <script.js>",
	Short: "Run a JavaScript file with the http module enabled",
	Long: `Run a JavaScript file in an embedded runtime with the http module
registered. Scripts create clients and issue requests:

  let c = http.client();
  let page = c.get("https://example.com");
  let data = c.request({url: "https://api.example.com", output: "json"});

The script's final expression value, if any, is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	scriptPath := args[0]
	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	rt := goja.New()
	if err := scripting.New(cfg.ClientOptions()).Enable(rt); err != nil {
		return fmt.Errorf("enable http module: %w", err)
	}

	logger.S.Debugw("running script", "path", scriptPath)
	value, err := rt.RunScript(scriptPath, string(src))
	if err != nil {
		return fmt.Errorf("run script: %w", err)
	}

	if value != nil && !goja.IsUndefined(value) && !goja.IsNull(value) {
		if err := printValue(value.Export()); err != nil {
			return err
		}
	}
	return nil
}
