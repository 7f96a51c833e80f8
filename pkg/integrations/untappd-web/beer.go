package untappdweb

import (
	"context"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BrewWolf/pkg/model"
)

type BeerScraped struct {
	Name    string `selector:".name > a"`
	Brewery string `selector:".brewery > a"`
	Style   string `selector:".style"`
}

// FindBeer scrapes the search results page into unsaved beers. Nothing is
// written to the database; callers decide which candidate to keep.
func (u *UntappedWebIntegration) FindBeer(ctx context.Context, query string) ([]model.Beer, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(u.baseURL.Hostname()),
		colly.UserAgent(userAgent),
		colly.StdlibContext(ctx),
	)

	var (
		errs    error
		results []model.Beer
	)

	seen := make(map[string]bool)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		scraped := BeerScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		beer := model.Beer{
			Name:     strings.TrimSpace(scraped.Name),
			Brewery:  strings.TrimSpace(scraped.Brewery),
			BeerType: strings.TrimSpace(scraped.Style),
		}

		if beer.Name == "" {
			return
		}

		key := beer.Name + "\x00" + beer.Brewery
		if seen[key] {
			return
		}

		seen[key] = true

		u.logger.Info("successfully scraped item from results", zap.String("name", beer.Name), zap.String("brewery", beer.Brewery))

		results = append(results, beer)
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping beer search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	searchURL := u.baseURL.JoinPath("search")
	searchURL.RawQuery = url.Values{"q": {query}}.Encode()

	u.logger.Info("scraping query results", zap.String("query", query))
	multierr.AppendInto(&errs, collector.Visit(searchURL.String()))

	u.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}
