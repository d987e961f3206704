package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avelhart/weather-cli/internal/domain"
	"github.com/avelhart/weather-cli/internal/favorites"
	"github.com/avelhart/weather-cli/internal/sanitize"
	"github.com/avelhart/weather-cli/internal/service/output"
	"github.com/spf13/cobra"
)

// cancelSentinel backs out of any interactive prompt.
const cancelSentinel = "-1"

type session struct {
	deps      Dependencies
	favorites *favorites.Store
	scanner   *bufio.Scanner
	out       io.Writer
	errOut    io.Writer
	pause     time.Duration
}

// runInteractive drives the menu loop until the user exits or input ends.
// Favorites live only for the duration of the session.
func runInteractive(cmd *cobra.Command, deps Dependencies) error {
	input := deps.Input
	if input == nil {
		input = os.Stdin
	}
	s := &session{
		deps:      deps,
		favorites: favorites.NewStore(),
		scanner:   bufio.NewScanner(input),
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		pause:     deps.MenuPause,
	}
	if deps.Weather != nil && !deps.Weather.HasCredentials() {
		fmt.Fprintln(s.errOut, "Warning: no OpenWeather API key configured; lookups will fail. Run 'weather configure --api-key <key>' or set OPENWEATHER_API_KEY.")
	}
	return s.run(cmd.Context())
}

func (s *session) run(ctx context.Context) error {
	for {
		s.printMenu()
		choice, ok := s.readLine()
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			s.citySearch(ctx)
		case "2":
			s.addFavorite(ctx)
		case "3":
			s.deleteFavorite()
		case "4":
			s.displayFavorites(ctx)
		case "5":
			fmt.Fprintln(s.out, "Exiting program.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice, please try again.")
		}
		if s.pause > 0 {
			// cosmetic pacing so the menu does not jump around
			time.Sleep(s.pause)
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out, "====================== Main Screen ======================")
	fmt.Fprintln(s.out, "Please enter a number corresponding to an action below.")
	fmt.Fprintln(s.out, "1. Search for a city's weather.")
	fmt.Fprintln(s.out, "2. Add to your favorite cities.")
	fmt.Fprintln(s.out, "3. Delete from your favorite cities.")
	fmt.Fprintln(s.out, "4. View weather of your favorite cities.")
	fmt.Fprintln(s.out, "5. Exit program.")
	fmt.Fprint(s.out, "Enter '1', '2', '3', '4', or '5': ")
}

func (s *session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *session) citySearch(ctx context.Context) {
	fmt.Fprintln(s.out, "====================== City Search ======================")
	fmt.Fprintf(s.out, "Enter the name of the city or '%s' to go back to the main screen.\n", cancelSentinel)
	fmt.Fprint(s.out, "City Name: ")
	cityName, ok := s.readLine()
	if !ok || cityName == cancelSentinel {
		return
	}

	lat, lon, err := s.deps.Weather.ResolveCity(ctx, cityName)
	if err != nil {
		s.reportError(err)
		return
	}
	reading, err := s.deps.Weather.CurrentWeather(ctx, lat, lon)
	if err != nil {
		s.reportError(err)
		return
	}
	title := fmt.Sprintf("Weather Data for %s:", sanitize.Normalize(cityName))
	fmt.Fprintln(s.out, output.RenderReading(title, reading))
	fmt.Fprintln(s.out)
}

func (s *session) addFavorite(ctx context.Context) {
	fmt.Fprintln(s.out, "====================== Add City ======================")
	s.printFavoriteNames()
	fmt.Fprintf(s.out, "Please type the name of the city you wish to add, or '%s' to go back to the main screen.\n", cancelSentinel)
	fmt.Fprint(s.out, "City Name: ")
	cityName, ok := s.readLine()
	if !ok || cityName == cancelSentinel {
		return
	}

	if s.favorites.Len() >= favorites.Capacity {
		fmt.Fprintln(s.out, "Cannot add city: favorites list is full.")
		return
	}
	lat, lon, err := s.deps.Weather.ResolveCity(ctx, cityName)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error adding favorite: %v\n", err)
		return
	}
	name := sanitize.Normalize(cityName)
	if err := s.favorites.Add(domain.Location{Name: name, Lat: lat, Lon: lon}); err != nil {
		fmt.Fprintf(s.errOut, "Error adding favorite: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Favorite successfully added: %s\n", name)
}

func (s *session) deleteFavorite() {
	fmt.Fprintln(s.out, "====================== Delete City ======================")
	if s.favorites.Len() == 0 {
		fmt.Fprintln(s.out, "No favorite cities to delete.")
		return
	}
	s.printFavoriteNames()
	fmt.Fprintf(s.out, "Please type the number of the city you wish to delete, or '%s' to go back to the main screen.\n", cancelSentinel)
	fmt.Fprint(s.out, "City Number: ")
	choice, ok := s.readLine()
	if !ok || choice == cancelSentinel {
		return
	}

	switch err := s.favorites.DeleteAt(choice); {
	case err == nil:
		fmt.Fprintln(s.out, "City successfully deleted.")
	case errors.Is(err, favorites.ErrIndexOutOfBounds):
		fmt.Fprintln(s.out, "Number out of bounds. Please try again.")
	case errors.Is(err, favorites.ErrInvalidIndex):
		fmt.Fprintln(s.errOut, "Invalid input. Please enter a valid number.")
	default:
		s.reportError(err)
	}
}

func (s *session) displayFavorites(ctx context.Context) {
	fmt.Fprintln(s.out, "====================== Favorite Cities ======================")
	entries := s.favorites.List()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No favorite cities to display.")
		return
	}
	for _, favorite := range entries {
		fmt.Fprintf(s.out, "City Name: %s\n", favorite.Name)
		reading, err := s.deps.Weather.CurrentWeather(ctx, favorite.Lat, favorite.Lon)
		if err != nil {
			s.reportError(err)
			continue
		}
		fmt.Fprintln(s.out, output.RenderReading("", reading))
		fmt.Fprintln(s.out)
	}
}

func (s *session) printFavoriteNames() {
	fmt.Fprintln(s.out, "Current favorite cities:")
	for i, favorite := range s.favorites.List() {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, favorite.Name)
	}
}

func (s *session) reportError(err error) {
	fmt.Fprintf(s.errOut, "Error: %v\n", err)
}
