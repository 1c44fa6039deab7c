package cmd

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:   "del <key>",
	Short: "Removes a property and its attached comment block",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("wrong number of arguments")
		}
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		if _, ok := doc.Remove(args[0]); !ok {
			logrus.Warnf("key %q not present in %s, nothing to delete", args[0], file)
			return nil
		}
		return storeDocument(doc)
	},
}

func init() {
	rootCmd.AddCommand(delCmd)
}
