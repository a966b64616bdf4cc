package main

import (
	"fmt"

	"github.com/BrandonKowalski/navkit/pkg/navkit"
	"github.com/BrandonKowalski/navkit/pkg/navkit/backnav"
	"github.com/BrandonKowalski/navkit/pkg/navkit/constants"
	"github.com/BrandonKowalski/navkit/pkg/navkit/router"
)

const (
	ScreenLibrary router.Screen = iota
	ScreenGame
	ScreenSettings
)

type Game struct {
	Name      string
	Platform  string
	Year      int
	Developer string
	Summary   string
}

type LibraryInput struct {
	Games []Game
}

type GameInput struct {
	Game Game
}

type SettingsInput struct{}

var sampleGames = []Game{
	{Name: "Super Metroid", Platform: "SNES", Year: 1994, Developer: "Nintendo R&D1", Summary: "Samus returns to Zebes to recover the last Metroid larva from Ridley and the Space Pirates."},
	{Name: "Castlevania: Symphony of the Night", Platform: "PS1", Year: 1997, Developer: "Konami", Summary: "Alucard wakes to find Dracula's castle risen again and explores it room by room."},
	{Name: "The Legend of Zelda: Link's Awakening", Platform: "GB", Year: 1993, Developer: "Nintendo EAD", Summary: "Shipwrecked on Koholint Island, Link must wake the Wind Fish to find his way home."},
	{Name: "Mega Man X", Platform: "SNES", Year: 1993, Developer: "Capcom", Summary: "X fights through eight Mavericks to stop Sigma's uprising."},
	{Name: "Chrono Trigger", Platform: "SNES", Year: 1995, Developer: "Square", Summary: "A fair in Guardia sends Crono across time to prevent the end of the world."},
	{Name: "Metal Slug", Platform: "NEOGEO", Year: 1996, Developer: "Nazca", Summary: "Two soldiers and one tank against General Morden's army."},
}

func newRouter() *router.Router {
	r := router.New()
	router.Destination[GameInput](r, ScreenGame, router.Push)
	router.Destination[SettingsInput](r, ScreenSettings, router.Present)

	r.Register(ScreenLibrary, libraryScreen)
	r.Register(ScreenGame, gameScreen)
	r.Register(ScreenSettings, settingsScreen)
	return r
}

func libraryScreen(nav *router.Navigator, input any) (any, error) {
	in := input.(LibraryInput)

	opts := navkit.DefaultListPageOptions()
	opts.Navigation = nav
	opts.Resume = nav.Resume()
	opts.ConfirmButton = constants.VirtualButtonStart
	opts.FooterHelpItems = append(opts.FooterHelpItems, navkit.FooterHelpItem{
		ButtonName: constants.VirtualButtonStart.GetName(),
		HelpText:   "Settings",
	})
	for _, g := range in.Games {
		opts.Items = append(opts.Items, navkit.ListItem{Title: g.Name, Detail: g.Platform})
	}

	result, err := navkit.ListPage("Library", opts)
	if err != nil {
		return nil, err
	}

	switch result.Action {
	case navkit.PageActionSelected:
		nav.Send(GameInput{Game: in.Games[result.Selected]})
	case navkit.PageActionConfirmed:
		nav.Send(SettingsInput{})
	}
	return result, nil
}

func gameScreen(nav *router.Navigator, input any) (any, error) {
	in := input.(GameInput)

	opts := navkit.DefaultCoverPageOptions()
	opts.Navigation = nav
	opts.Resume = nav.Resume()
	opts.CoverImageURL = coverURL
	opts.Content = []navkit.Block{
		navkit.NewHeadingBlock(in.Game.Name),
		navkit.NewTextBlock(in.Game.Summary),
		navkit.NewDividerBlock(),
		navkit.NewRowBlock("Platform", in.Game.Platform),
		navkit.NewRowBlock("Released", fmt.Sprint(in.Game.Year)),
		navkit.NewRowBlock("Developer", in.Game.Developer),
	}
	opts.Items = []navkit.ListItem{{Title: "Settings"}}

	result, err := navkit.CoverPage(in.Game.Name, opts)
	if err != nil {
		return nil, err
	}
	if result.Action == navkit.PageActionSelected {
		nav.Send(SettingsInput{})
	}
	return result, nil
}

func settingsScreen(nav *router.Navigator, input any) (any, error) {
	opts := navkit.DefaultPageOptions()
	opts.Navigation = nav
	opts.Confirmation = backnav.Discard()
	opts.Content = []navkit.Block{
		navkit.NewRowBlock("Page style", navkit.PageDefaults().Style),
		navkit.NewRowBlock("Cover style", navkit.PageDefaults().Cover().String()),
		navkit.NewRowBlock("Quick back", navkit.PageDefaults().QuickBack().GetName()),
		navkit.NewSpacerBlock(12),
		navkit.NewTextBlock("Press Start to save. Going back asks before discarding."),
	}
	opts.FooterHelpItems = []navkit.FooterHelpItem{
		{ButtonName: constants.VirtualButtonStart.GetName(), HelpText: "Save"},
	}

	result, err := navkit.Page("Settings", opts)
	if err != nil {
		return nil, err
	}
	if result.Action == navkit.PageActionConfirmed {
		navkit.GetLogger().Info("Settings saved")
		nav.Dismiss()
	}
	return result, nil
}
