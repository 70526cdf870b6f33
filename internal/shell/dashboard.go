package shell

import (
	"fmt"

	"schedq/internal/ui"
)

func init() {
	Register(&Command{
		Name:        "dash",
		Description: "Open the live dashboard (q to return)",
		Handler: func(s *Shell, args []string) bool {
			if err := ui.Run(s.Store, s.Cfg); err != nil {
				s.Log.Error("dashboard exited", "err", err)
				fmt.Fprintf(s.out, "Dashboard failed: %v\n", err)
			}
			return false
		},
	})
}
