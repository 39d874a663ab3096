package export

import (
	"time"

	"jumplist-exporter/feature/jumplist/models"
	"jumplist-exporter/feature/jumplist/reconcile"
)

const testLayout = "2006-01-02 15:04:05"

func ptr[T any](v T) *T {
	return &v
}

func automaticFixture() *models.AutomaticDestination {
	return &models.AutomaticDestination{
		SourceFile:          `C:\Cases\5f7b5f1e01b83767.automaticDestinations-ms`,
		Source:              models.SourceInfo{Modified: ptr(time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC))},
		AppID:               models.AppID{ID: "5f7b5f1e01b83767", Description: "Quick Access"},
		DestListVersion:     4,
		DestListCount:       2,
		LastUsedEntryNumber: 2,
		DestListEntries: []models.DestListEntry{
			{
				EntryNumber:  1,
				Path:         `C:\Data\a,b "quoted" <tag>&amp.txt`,
				Pinned:       true,
				CreatedOn:    time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC),
				LastModified: time.Date(2022, 1, 1, 10, 0, 0, 0, time.UTC),
				Hostname:     "host",
				MacAddress:   "00:00:00:00:00:00",
				Shortcut: &models.Shortcut{
					Header: models.Header{
						TargetCreated:  time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC),
						TargetModified: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
						DataFlags:      models.HasTargetIDList,
					},
					TargetIDs: []models.ShellItem{{Value: `C:`}, {Value: "Data"}},
				},
			},
			{
				EntryNumber: 2,
				MRUPosition: 1,
				Path:        "line1\nline2",
			},
		},
		Directory: []models.DirectoryEntry{{Name: "Root Entry"}, {Name: "1"}, {Name: "2"}, {Name: "DestList"}},
	}
}

func customFixture() *models.CustomDestination {
	return &models.CustomDestination{
		SourceFile: "/cases/9b9cdc69c1c24e2b.customDestinations-ms",
		AppID:      models.AppID{ID: "9b9cdc69c1c24e2b", Description: "Notepad"},
		Entries: []models.CustomEntry{{
			Name: "Tasks",
			Shortcuts: []models.Shortcut{{
				Header:     models.Header{DataFlags: models.HasArguments},
				Arguments:  "/new",
				LocalPath:  `C:\Windows`,
				CommonPath: "notepad.exe",
				TargetIDs:  []models.ShellItem{},
			}},
		}},
	}
}

func automaticSets() []models.RecordSet {
	return []models.RecordSet{reconcile.NewBuilder(testLayout, nil).Automatic(automaticFixture(), false)}
}

func customSets() []models.RecordSet {
	return []models.RecordSet{reconcile.NewBuilder(testLayout, nil).Custom(customFixture())}
}
