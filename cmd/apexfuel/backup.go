package apexfuel

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/apexfuel/internal/service"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage store file backups",
}

var backupOut string

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the store file with a checksum sidecar",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			out = filepath.Join(filepath.Dir(path),
				fmt.Sprintf("apexfuel-%s.db", time.Now().Format("20060102-150405")))
		}
		info, err := service.CreateBackup(path, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s (%d bytes)\n", info.Path, info.SizeBytes)
		fmt.Fprintf(cmd.OutOrStdout(), "SHA256: %s\n", info.Checksum)
		return nil
	},
}

var backupForce bool

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Restore the store from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := service.RestoreBackup(args[0], path, backupForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored store from %s\n", args[0])
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List backups in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			path, err := resolveStorePath()
			if err != nil {
				return err
			}
			dir = filepath.Dir(path)
		}
		backups, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "PATH\tSIZE\tCREATED\tSHA256")
		for _, b := range backups {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n",
				b.Path, b.SizeBytes, b.CreatedAt.Format("2006-01-02 15:04"), b.Checksum)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupRestoreCmd, backupListCmd)
	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path")
	backupRestoreCmd.Flags().BoolVar(&backupForce, "force", false, "Overwrite an existing store")
}
