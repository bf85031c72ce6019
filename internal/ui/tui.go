package ui

// tui.go drives the main menu loop: one search method per iteration,
// dispatching to the mode-specific flow and returning to the menu after.

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	huhspinner "github.com/charmbracelet/huh/spinner"

	"github.com/ParthebhanMedi/search-pubchem/internal/api"
	"github.com/ParthebhanMedi/search-pubchem/internal/db"
	"github.com/ParthebhanMedi/search-pubchem/internal/models"
	"github.com/ParthebhanMedi/search-pubchem/internal/session"
)

// App wires the client, the session-scoped similarity store, the history
// database and the download directory into the interactive loop.
type App struct {
	Client   *api.Client
	Store    *session.Store
	Database *db.DB
	OutDir   string
}

// Menu entries, in sidebar order from the original interface plus the
// local history view.
var menuItems = []string{
	api.ByCID.String(),
	api.ByName.String(),
	api.BySMILES.String(),
	api.ByFormula.String(),
	api.ByMass.String(),
	api.ByStructure.String() + " (Substructure/Superstructure)",
	api.ByCrossReference.String(),
	api.BySimilarity.String(),
	"View All Similar Compounds",
	api.ViewFullRecord.String(),
	"Search History",
	"Quit",
}

// Run shows the search method menu until the user quits. Every action
// failure is reported and the loop keeps going: no error aborts the session.
func (a *App) Run() error {
	for {
		choice, err := RunSelector(SelectorConfig{
			Title:    "PubChem Search Interface",
			Subtitle: "Choose a search method",
			Items:    menuItems,
		})
		if err != nil {
			return err
		}

		switch choice {
		case -1, len(menuItems) - 1:
			return nil
		case 0:
			a.runCIDSearch()
		case 1:
			a.runSingleFieldSearch(api.ByName, "Enter chemical name (e.g., glucose)", "glucose", a.Client.SearchByName)
		case 2:
			a.runSingleFieldSearch(api.BySMILES, "Enter SMILES string", "CC(=O)OC1=CC=CC=C1C(=O)O", a.Client.SearchBySMILES)
		case 3:
			a.runSingleFieldSearch(api.ByFormula, "Enter molecular formula (e.g., H2O)", "C6H12O6", a.Client.SearchByFormula)
		case 4:
			a.runMassSearch()
		case 5:
			a.runStructureSearch()
		case 6:
			a.runXrefSearch()
		case 7:
			a.runSimilaritySearch()
		case 8:
			a.runViewAllSimilar()
		case 9:
			a.runFullRecord()
		case 10:
			a.runHistory()
		}
	}
}

// errorMessage maps the error taxonomy to the user-facing message.
func errorMessage(err error) string {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("Error %d: %s", httpErr.Status, httpErr.Reason)
	}
	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Sprintf("Failed to fetch data: %v", transportErr.Err)
	}
	return err.Error()
}

// recordSearch logs a completed search to the history database. History is
// best-effort: a logging failure never interrupts the session.
func (a *App) recordSearch(mode, query string, count int) {
	if a.Database == nil {
		return
	}
	if err := a.Database.RecordSearch(mode, query, count); err != nil {
		PrintWarning(fmt.Sprintf("Could not record search history: %v", err))
	}
}

func (a *App) recordDownload(cid, format, filename string, size int) {
	if a.Database == nil {
		return
	}
	if err := a.Database.RecordDownload(cid, format, filename, size); err != nil {
		PrintWarning(fmt.Sprintf("Could not record download: %v", err))
	}
}

// runSingleFieldSearch handles the modes that take one text value and
// return a CID list.
func (a *App) runSingleFieldSearch(mode api.SearchMode, subtitle, defaultValue string, search func(string) ([]string, error)) {
	value, cancelled, err := RunInput(InputConfig{
		Title:     mode.String(),
		Subtitle:  subtitle,
		Default:   defaultValue,
		Validator: validateNonEmpty,
	})
	if err != nil || cancelled {
		return
	}

	var cids []string
	var searchErr error
	if err := RunWithSpinner("Searching PubChem...", func() {
		cids, searchErr = search(value)
	}); err != nil {
		PrintError(err.Error())
		return
	}
	if searchErr != nil {
		PrintError(errorMessage(searchErr))
		return
	}

	a.recordSearch(mode.String(), value, len(cids))
	a.showCIDResults(mode.String(), value, cids)
}

// runCIDSearch fetches the property record for a CID, shows it as JSON,
// then displays the structure image, matching the original By CID flow.
func (a *App) runCIDSearch() {
	cid, cancelled, err := RunInput(InputConfig{
		Title:     api.ByCID.String(),
		Subtitle:  "Enter PubChem CID",
		Default:   "2244",
		Validator: validateNonEmpty,
	})
	if err != nil || cancelled {
		return
	}
	cid = api.NormalizeCID(cid)

	var (
		props    *models.PropertyTable
		rawDoc   json.RawMessage
		fetchErr error
	)
	if err := RunWithSpinner(fmt.Sprintf("Fetching properties for CID %s...", cid), func() {
		props, rawDoc, fetchErr = a.Client.FetchProperties(cid)
	}); err != nil {
		PrintError(err.Error())
		return
	}
	if fetchErr != nil {
		PrintError(errorMessage(fetchErr))
		return
	}

	a.recordSearch(api.ByCID.String(), cid, len(props.PropertyTable.Properties))

	save := func() (string, error) {
		filename, err := SaveJSON(a.OutDir, cid, rawDoc)
		if err == nil {
			a.recordDownload(cid, "JSON", filename, len(rawDoc))
		}
		return filename, err
	}
	if err := RunJSONView(fmt.Sprintf("Properties for CID %s", cid), rawDoc, save); err != nil {
		PrintError(err.Error())
		return
	}

	a.showStructure(cid)
}

// runMassSearch handles equals and range mass searches.
func (a *App) runMassSearch() {
	in, err := PromptForMassSearch()
	if err != nil {
		return
	}

	var cids []string
	var searchErr error
	var query string
	if in.Range {
		query = fmt.Sprintf("%s range %s..%s", in.MassType, in.Min, in.Max)
		if err := RunWithSpinner("Searching PubChem...", func() {
			cids, searchErr = a.Client.SearchByMassRange(in.MassType, in.Min, in.Max)
		}); err != nil {
			PrintError(err.Error())
			return
		}
	} else {
		query = fmt.Sprintf("%s equals %s", in.MassType, in.Value)
		if err := RunWithSpinner("Searching PubChem...", func() {
			cids, searchErr = a.Client.SearchByMassEquals(in.MassType, in.Value)
		}); err != nil {
			PrintError(err.Error())
			return
		}
	}
	if searchErr != nil {
		PrintError(errorMessage(searchErr))
		return
	}

	a.recordSearch(api.ByMass.String(), query, len(cids))
	a.showCIDResults(api.ByMass.String(), query, cids)
}

// runStructureSearch handles substructure/superstructure searches.
func (a *App) runStructureSearch() {
	in, err := PromptForStructureSearch()
	if err != nil {
		return
	}

	var cids []string
	var searchErr error
	if err := RunWithSpinner(fmt.Sprintf("Running %s search...", in.SearchType), func() {
		cids, searchErr = a.Client.SearchByStructure(in.SearchType, in.SMILES)
	}); err != nil {
		PrintError(err.Error())
		return
	}
	if searchErr != nil {
		PrintError(errorMessage(searchErr))
		return
	}

	query := fmt.Sprintf("%s %s", in.SearchType, in.SMILES)
	a.recordSearch(api.ByStructure.String(), query, len(cids))
	a.showCIDResults(api.ByStructure.String(), query, cids)
}

// runSimilaritySearch replaces the session store with the new result set,
// even when the search fails or finds nothing: the store always reflects
// the most recent search.
func (a *App) runSimilaritySearch() {
	in, err := PromptForSimilaritySearch()
	if err != nil {
		return
	}

	var cids []string
	var searchErr error
	if err := RunWithSpinner("Running similarity search...", func() {
		cids, searchErr = a.Client.SearchBySimilarity(in.SMILES, in.Threshold)
	}); err != nil {
		PrintError(err.Error())
		return
	}

	a.Store.Replace(cids)

	if searchErr != nil {
		PrintError(errorMessage(searchErr))
		return
	}

	query := fmt.Sprintf("%s @ %d%%", in.SMILES, in.Threshold)
	a.recordSearch(api.BySimilarity.String(), query, len(cids))

	if len(cids) == 0 {
		PrintWarning("No similar compounds found.")
		return
	}

	PrintSuccess(fmt.Sprintf("Found %d similar compounds.", len(cids)))
	a.showCIDResults(api.BySimilarity.String(), query, cids)
}

// runViewAllSimilar replays the stored similarity results. The warning is
// the same whether no search ran yet or the last search found nothing.
func (a *App) runViewAllSimilar() {
	if a.Store.Empty() {
		PrintWarning("No compounds to display. Perform a search first.")
		return
	}

	confirmed, err := ConfirmViewAll(a.Store.Len())
	if err != nil || !confirmed {
		return
	}

	a.viewAllStructures(a.Store.CIDs())
}

// runXrefSearch searches substances by cross-reference and shows the SID
// list document.
func (a *App) runXrefSearch() {
	in, err := PromptForXrefSearch()
	if err != nil {
		return
	}

	var (
		list      *models.SubstanceList
		rawDoc    json.RawMessage
		searchErr error
	)
	if err := RunWithSpinner("Searching substances...", func() {
		list, rawDoc, searchErr = a.Client.SearchByXref(in.XrefType, in.XrefValue)
	}); err != nil {
		PrintError(err.Error())
		return
	}
	if searchErr != nil {
		PrintError(errorMessage(searchErr))
		return
	}

	sids := len(list.IdentifierList.SID)
	query := fmt.Sprintf("%s %s", in.XrefType, in.XrefValue)
	a.recordSearch(api.ByCrossReference.String(), query, sids)

	title := fmt.Sprintf("Substances for %s %s (%d SIDs)", in.XrefType, in.XrefValue, sids)
	if err := RunJSONView(title, rawDoc, nil); err != nil {
		PrintError(err.Error())
	}
}

// runFullRecord fetches a complete compound record as JSON or SDF.
func (a *App) runFullRecord() {
	cid, cancelled, err := RunInput(InputConfig{
		Title:     api.ViewFullRecord.String(),
		Subtitle:  "Enter PubChem CID for SDF and JSON",
		Default:   "2244",
		Validator: validateNonEmpty,
	})
	if err != nil || cancelled {
		return
	}
	cid = api.NormalizeCID(cid)

	action, err := PromptForRecordAction(cid)
	if err != nil || action == RecordActionCancel {
		return
	}

	switch action {
	case RecordActionViewJSON:
		var doc []byte
		var fetchErr error
		if err := RunWithSpinner(fmt.Sprintf("Fetching JSON record for CID %s...", cid), func() {
			doc, fetchErr = a.Client.FetchFullRecordJSON(cid)
		}); err != nil {
			PrintError(err.Error())
			return
		}
		if fetchErr != nil {
			PrintError(errorMessage(fetchErr))
			return
		}

		PrintSuccess(fmt.Sprintf("Successfully retrieved the JSON response for CID %s.", cid))
		save := func() (string, error) {
			filename, err := SaveJSON(a.OutDir, cid, doc)
			if err == nil {
				a.recordDownload(cid, "JSON", filename, len(doc))
			}
			return filename, err
		}
		if err := RunJSONView(fmt.Sprintf("Full record for CID %s", cid), doc, save); err != nil {
			PrintError(err.Error())
		}

	case RecordActionDownloadSDF:
		a.downloadSDF(cid)
	}
}

// downloadSDF fetches the SDF record and writes it to the download
// directory. Uses the huh spinner since there is no surrounding TUI model.
func (a *App) downloadSDF(cid string) {
	var data []byte
	var fetchErr error
	if err := huhspinner.New().
		Title(fmt.Sprintf("Fetching SDF for CID %s...", cid)).
		Action(func() {
			data, fetchErr = a.Client.FetchFullRecordSDF(cid)
		}).
		Run(); err != nil {
		PrintError(err.Error())
		return
	}
	if fetchErr != nil {
		PrintError(errorMessage(fetchErr))
		return
	}

	filename, err := SaveSDF(a.OutDir, cid, data)
	if err != nil {
		PrintError(err.Error())
		return
	}

	a.recordDownload(cid, SDFMimeType, filename, len(data))
	PrintSuccess(fmt.Sprintf("Successfully retrieved the SDF file for CID %s. Saved %s", cid, filename))
}

// runHistory shows the session's search and download logs.
func (a *App) runHistory() {
	if a.Database == nil {
		PrintWarning("History is not available (no database).")
		return
	}

	searches, err := a.Database.RecentSearches(historyLimit)
	if err != nil {
		PrintError(err.Error())
		return
	}
	downloads, err := a.Database.RecentDownloads(historyLimit)
	if err != nil {
		PrintError(err.Error())
		return
	}

	if err := RunHistory(searches, downloads); err != nil {
		PrintError(err.Error())
	}
}

// showCIDResults presents a CID list and loops over the table actions.
func (a *App) showCIDResults(title, query string, cids []string) {
	if len(cids) == 0 {
		PrintWarning("No compounds found.")
		return
	}

	for {
		action, cid, err := RunResults(ResultsConfig{
			Title:      title,
			Subtitle:   fmt.Sprintf("%d compounds for %q", len(cids), query),
			IDs:        cids,
			Structures: true,
		})
		if err != nil {
			PrintError(err.Error())
			return
		}

		switch action {
		case ResultActionBack:
			return
		case ResultActionViewStructure:
			a.showStructure(cid)
		case ResultActionViewAll:
			a.viewAllStructures(cids)
		case ResultActionDownloadSDF:
			a.downloadSDF(cid)
		}
	}
}

// showStructure fetches, decodes and displays one structure image.
func (a *App) showStructure(cid string) {
	var img image.Image
	var fetchErr error
	if err := RunWithSpinner(fmt.Sprintf("Fetching structure for CID %s...", cid), func() {
		img, fetchErr = a.Client.FetchStructureImage(cid)
	}); err != nil {
		PrintError(err.Error())
		return
	}
	if fetchErr != nil {
		PrintError(fmt.Sprintf("Could not retrieve image for CID %s: %s", cid, errorMessage(fetchErr)))
		return
	}

	save := func() (string, error) {
		filename, err := SavePNG(a.OutDir, cid, img)
		if err == nil {
			a.recordDownload(cid, "PNG", filename, 0)
		}
		return filename, err
	}
	if err := RunImageView(cid, img, save); err != nil {
		PrintError(err.Error())
	}
}

// viewAllStructures fetches and displays structures for a CID list, one at
// a time. A failed CID is reported and skipped; the rest still render.
func (a *App) viewAllStructures(cids []string) {
	var results []api.StructureResult
	if err := RunWithSpinner(fmt.Sprintf("Fetching %d structures...", len(cids)), func() {
		results = a.Client.FetchStructures(cids, nil)
	}); err != nil {
		PrintError(err.Error())
		return
	}

	for _, r := range results {
		if r.Err != nil {
			PrintError(fmt.Sprintf("Could not retrieve image for CID %s: %s", r.CID, errorMessage(r.Err)))
			continue
		}

		cid := r.CID
		img := r.Image
		save := func() (string, error) {
			filename, err := SavePNG(a.OutDir, cid, img)
			if err == nil {
				a.recordDownload(cid, "PNG", filename, 0)
			}
			return filename, err
		}
		if err := RunImageView(cid, img, save); err != nil {
			PrintError(err.Error())
			return
		}
	}
}
