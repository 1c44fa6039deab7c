package cmd

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	comments []string

	setCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Sets a property, preserving the formatting of the rest of the file",
		Long:  "Sets a property. An existing property keeps its position and separator; a new one is appended at the end. Formatting of untouched lines is preserved byte for byte.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				_ = cmd.Help()
				return errors.New("wrong number of arguments")
			}
			doc, err := loadDocument()
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			if !doc.Has(key) {
				logrus.Debugf("key %q not present, appending", key)
			}
			if len(comments) > 0 {
				if err := doc.SetProperty(key, value, comments...); err != nil {
					return err
				}
			} else {
				doc.Put(key, value)
			}
			return storeDocument(doc)
		},
	}
)

func init() {
	setCmd.Flags().StringArrayVarP(&comments, "comment", "c", nil, "comment line to attach to the property; repeat for a block")
	rootCmd.AddCommand(setCmd)
}
