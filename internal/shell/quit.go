package shell

import "fmt"

func init() {
	Register(&Command{
		Name:        "quit",
		Description: "Exit the program",
		Handler: func(s *Shell, args []string) bool {
			fmt.Fprintln(s.out, "Exiting the program.")
			return true
		},
	})
}
