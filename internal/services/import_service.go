package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"flock/internal/infra"
	"flock/internal/models/db_models"
	"flock/internal/models/response_models"
	"flock/internal/repositories"
	"flock/pkg/memcache"
	"flock/pkg/utils"
)

// columnSynonyms maps each target field to the substrings sniffed for in the
// header row. Headers are matched case-insensitively; the first matching
// column wins and every field except the two name columns is optional.
var columnSynonyms = []struct {
	field    string
	keywords []string
}{
	{"firstName", []string{"first name", "firstname"}},
	{"lastName", []string{"surname", "last name", "lastname"}},
	{"phone", []string{"contact", "phone", "mobile", "tel"}},
	{"birthday", []string{"date of birth", "birthday", "dob", "birth"}},
	{"camp", []string{"camp", "group"}},
	{"memberType", []string{"member type", "membertype", "type", "category"}},
	{"region", []string{"region"}},
	{"residence", []string{"residence", "address", "location"}},
	{"guardian", []string{"guardian", "parent"}},
	{"email", []string{"email", "e-mail", "mail"}},
}

// roleKeywords classify the memberType cell; the same table re-runs against
// the camp cell, whose match overrides and is stripped from the camp name.
var roleKeywords = []struct {
	keyword string
	role    db_models.MemberRole
}{
	{"new", db_models.MemberRoleNewConvert},
	{"old", db_models.MemberRoleMember},
	{"member", db_models.MemberRoleMember},
	{"leader", db_models.MemberRoleLeader},
	{"shepherd", db_models.MemberRoleShepherd},
	{"guest", db_models.MemberRoleGuest},
}

type ImportServiceInterface interface {
	ImportFromSheet(ctx context.Context, spreadsheetID, readRange string) (*response_models.ImportResult, error)
	ImportRows(ctx context.Context, rows [][]string) (*response_models.ImportResult, error)
	StartSheetImport(spreadsheetID, readRange string)
	Progress() (memcache.ImportProgress, bool)
}

type ImportService struct {
	memberRepo repositories.MemberRepository
	campRepo   repositories.CampRepository
	sheets     infra.SpreadsheetSource
	progress   memcache.ProgressStore
}

func NewImportService(
	memberRepo repositories.MemberRepository,
	campRepo repositories.CampRepository,
	sheets infra.SpreadsheetSource,
	progress memcache.ProgressStore,
) ImportServiceInterface {
	return &ImportService{
		memberRepo: memberRepo,
		campRepo:   campRepo,
		sheets:     sheets,
		progress:   progress,
	}
}

// ResolveColumns maps each target field to a header index, or -1 when no
// header contains any of its synonyms.
func ResolveColumns(headers []string) map[string]int {
	mapping := make(map[string]int, len(columnSynonyms))
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, spec := range columnSynonyms {
		mapping[spec.field] = -1
		for i, header := range lowered {
			if header == "" {
				continue
			}
			for _, kw := range spec.keywords {
				if strings.Contains(header, kw) {
					mapping[spec.field] = i
					break
				}
			}
			if mapping[spec.field] != -1 {
				break
			}
		}
	}
	return mapping
}

// classifyRole keyword-matches a cell against the role table. The bool
// reports whether anything matched; callers fall back to their default.
func classifyRole(cell string) (db_models.MemberRole, bool) {
	lowered := strings.ToLower(cell)
	for _, rk := range roleKeywords {
		if strings.Contains(lowered, rk.keyword) {
			return rk.role, true
		}
	}
	return "", false
}

// NormalizeCampCell splits a camp cell into the camp name and an optional
// role override: "Camp 3 Leader" means camp "Camp 3" led by this row.
func NormalizeCampCell(cell string) (string, db_models.MemberRole, bool) {
	name := strings.TrimSpace(cell)
	if name == "" {
		return "", "", false
	}

	lowered := strings.ToLower(name)
	for _, kw := range []string{"leader", "shepherd"} {
		idx := strings.Index(lowered, kw)
		if idx < 0 {
			continue
		}
		stripped := strings.TrimSpace(name[:idx] + name[idx+len(kw):])
		stripped = strings.Trim(stripped, "-– ")
		role := db_models.MemberRoleLeader
		if kw == "shepherd" {
			role = db_models.MemberRoleShepherd
		}
		return stripped, role, true
	}
	return name, "", false
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (s *ImportService) ImportFromSheet(ctx context.Context, spreadsheetID, readRange string) (*response_models.ImportResult, error) {
	grid, err := s.sheets.FetchGrid(ctx, spreadsheetID, readRange)
	if err != nil {
		// External failures become a structured result, not a fault.
		s.progress.Set(memcache.ImportProgress{Status: memcache.ImportError, Message: err.Error()})
		return &response_models.ImportResult{Success: false, Message: fmt.Sprintf("spreadsheet fetch failed: %v", err)}, nil
	}
	return s.ImportRows(ctx, grid)
}

func (s *ImportService) ImportRows(ctx context.Context, rows [][]string) (*response_models.ImportResult, error) {
	if len(rows) == 0 {
		s.progress.Set(memcache.ImportProgress{Status: memcache.ImportError, Message: "spreadsheet is empty"})
		return &response_models.ImportResult{Success: false, Message: "spreadsheet is empty"}, nil
	}

	headers := rows[0]
	dataRows := rows[1:]
	mapping := ResolveColumns(headers)

	result := &response_models.ImportResult{
		ColumnMapping: mapping,
		FoundHeaders:  headers,
	}

	if mapping["firstName"] == -1 && mapping["lastName"] == -1 {
		s.progress.Set(memcache.ImportProgress{Status: memcache.ImportError, Message: utils.ErrMissingNameColumns.Error()})
		result.Message = utils.ErrMissingNameColumns.Error()
		return result, nil
	}

	total := len(dataRows)
	s.progress.Set(memcache.ImportProgress{Current: 0, Total: total, Status: memcache.ImportRunning, Message: "Import started"})

	// Camps repeat across rows; one lookup/insert per distinct name.
	campCache := make(map[string]uuid.UUID)

	for i, row := range dataRows {
		if err := s.importRow(ctx, row, mapping, campCache, result); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+2, err))
		}

		if (i+1)%10 == 0 {
			s.progress.Set(memcache.ImportProgress{
				Current: i + 1,
				Total:   total,
				Status:  memcache.ImportRunning,
				Message: fmt.Sprintf("Processed %d of %d rows", i+1, total),
			})
		}
	}

	result.Success = result.ErrorCount == 0
	result.Message = fmt.Sprintf("Synced %d, skipped %d, errors %d", result.SyncedCount, result.SkippedCount, result.ErrorCount)

	s.progress.Set(memcache.ImportProgress{
		Current: total,
		Total:   total,
		Status:  memcache.ImportCompleted,
		Message: result.Message,
	})
	return result, nil
}

func (s *ImportService) importRow(ctx context.Context, row []string, mapping map[string]int, campCache map[string]uuid.UUID, result *response_models.ImportResult) error {
	firstName := cellAt(row, mapping["firstName"])
	lastName := cellAt(row, mapping["lastName"])
	if firstName == "" && lastName == "" {
		result.SkippedCount++
		return nil
	}

	role := db_models.MemberRoleMember
	if r, ok := classifyRole(cellAt(row, mapping["memberType"])); ok {
		role = r
	}

	// Camp-cell keywords run after and therefore win over memberType.
	campName := ""
	if rawCamp := cellAt(row, mapping["camp"]); rawCamp != "" {
		name, campRole, forced := NormalizeCampCell(rawCamp)
		campName = name
		if forced {
			role = campRole
		}
	}

	var campID *uuid.UUID
	if campName != "" {
		id, err := s.resolveCamp(ctx, campName, campCache)
		if err != nil {
			return err
		}
		campID = &id
	}

	email := strings.ToLower(cellAt(row, mapping["email"]))
	phone := utils.NormalizePhone(cellAt(row, mapping["phone"]))

	member, err := s.findExisting(ctx, email, phone)
	if err != nil {
		return err
	}

	isNew := member == nil
	if isNew {
		member = &db_models.Member{Status: db_models.MemberStatusActive}
	}

	member.FirstName = firstName
	member.LastName = lastName
	member.Role = role
	member.CampID = campID
	member.Region = cellAt(row, mapping["region"])
	member.Residence = cellAt(row, mapping["residence"])
	member.GuardianName = cellAt(row, mapping["guardian"])
	if email != "" {
		member.Email = &email
	}
	if phone != "" {
		member.Phone = &phone
	}
	if birthday := utils.ParseFlexibleDate(cellAt(row, mapping["birthday"])); birthday != nil {
		member.Birthday = birthday
	}

	if isNew {
		err = s.memberRepo.Insert(ctx, member)
	} else {
		err = s.memberRepo.Update(ctx, member)
	}
	if err != nil {
		return err
	}
	result.SyncedCount++

	// Last Leader row processed for a camp wins its leadership.
	if role == db_models.MemberRoleLeader && campID != nil {
		if err := s.campRepo.SetLeader(ctx, *campID, member.ID); err != nil {
			log.Printf("setting leader of camp %s failed: %v", campName, err)
		}
	}
	return nil
}

func (s *ImportService) resolveCamp(ctx context.Context, name string, cache map[string]uuid.UUID) (uuid.UUID, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	camp, err := s.campRepo.FindByName(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	if camp == nil {
		camp = &db_models.Camp{Name: name}
		if err := s.campRepo.Insert(ctx, camp); err != nil {
			return uuid.Nil, err
		}
	}
	cache[name] = camp.ID
	return camp.ID, nil
}

// findExisting looks up by email first, then phone. Rows with neither
// always insert; de-duplication is not possible for them.
func (s *ImportService) findExisting(ctx context.Context, email, phone string) (*db_models.Member, error) {
	if email != "" {
		member, err := s.memberRepo.FindByEmail(ctx, email)
		if err != nil || member != nil {
			return member, err
		}
	}
	if phone != "" {
		return s.memberRepo.FindByPhone(ctx, phone)
	}
	return nil, nil
}

// StartSheetImport runs the sync in the background; callers poll Progress.
func (s *ImportService) StartSheetImport(spreadsheetID, readRange string) {
	s.progress.Set(memcache.ImportProgress{Status: memcache.ImportRunning, Message: "Fetching spreadsheet"})
	go func() {
		ctx := context.Background()
		if _, err := s.ImportFromSheet(ctx, spreadsheetID, readRange); err != nil {
			// ImportFromSheet reports its own failures; this guards the
			// contract that the progress slot never ends on "running".
			s.progress.Set(memcache.ImportProgress{Status: memcache.ImportError, Message: err.Error()})
		}
	}()
}

func (s *ImportService) Progress() (memcache.ImportProgress, bool) {
	return s.progress.Get()
}
