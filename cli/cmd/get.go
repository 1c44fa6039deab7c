package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	raw bool

	getCmd = &cobra.Command{
		Use:   "get <key>",
		Short: "Prints the value of a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("wrong number of arguments")
			}
			doc, err := loadDocument()
			if err != nil {
				return err
			}
			key := args[0]
			var value string
			var ok bool
			if raw {
				value, ok = doc.GetRaw(key)
			} else {
				value, ok = doc.GetProperty(key)
			}
			if !ok {
				return fmt.Errorf("key %q not present in %s", key, file)
			}
			fmt.Println(value)
			return nil
		},
	}
)

func init() {
	getCmd.Flags().BoolVar(&raw, "raw", false, "print the value in its raw (escaped) form")
	rootCmd.AddCommand(getCmd)
}
