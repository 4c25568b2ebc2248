package main

import (
	"fmt"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/presentation/graph"
	"github.com/aretw0/sboard/internal/presentation/report"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show project metadata and entity counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReport(cmd, report.Info)
	},
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the shots of the master timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReport(cmd, report.Scenes)
	},
}

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "List panels with scene and timeline frame ranges",
	Long:  `Lists every panel in timeline order, or only those of --scene.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sceneID, _ := cmd.Flags().GetString("scene")
		return withReport(cmd, func(p *sboard.Project) (string, error) {
			if sceneID == "" {
				return report.Panels(p, nil)
			}
			s, err := p.Scene(sceneID)
			if err != nil {
				return "", err
			}
			return report.Panels(p, &s)
		})
	},
}

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "Show the layer tree of a panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("panel")
		return withReport(cmd, func(p *sboard.Project) (string, error) {
			pn, err := p.Panel(id)
			if err != nil {
				return "", err
			}
			return report.Layers(pn)
		})
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export a panel layer graph as Mermaid",
	Long:  `Outputs a Mermaid diagram (graph TD) of the layer graph of --panel. With --highlight the layers a default walk yields are marked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("panel")
		highlight, _ := cmd.Flags().GetBool("highlight")

		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		pn, err := p.Panel(id)
		if err != nil {
			return err
		}
		out, err := graph.PanelChart(pn, highlight)
		if err != nil {
			return err
		}
		// Raw Mermaid, never styled, so it can be piped into other tools.
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List library categories and the file path of every element",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReport(cmd, report.Library)
	},
}

func withReport(cmd *cobra.Command, build func(*sboard.Project) (string, error)) error {
	p, err := openProject(cmd)
	if err != nil {
		return err
	}
	md, err := build(p)
	if err != nil {
		return err
	}
	return emit(cmd, md)
}

func init() {
	rootCmd.AddCommand(infoCmd, scenesCmd, panelsCmd, layersCmd, graphCmd, libraryCmd)

	panelsCmd.Flags().String("scene", "", "Only list the panels of this scene id")

	layersCmd.Flags().String("panel", "", "Panel id")
	_ = layersCmd.MarkFlagRequired("panel")

	graphCmd.Flags().String("panel", "", "Panel id")
	graphCmd.Flags().Bool("highlight", false, "Mark the layers a default walk yields")
	_ = graphCmd.MarkFlagRequired("panel")
}
