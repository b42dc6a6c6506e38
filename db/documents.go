// ABOUTME: Repository for documents and photos attached to projects
// ABOUTME: Files live on disk elsewhere; these records hold paths and metadata
package db

import (
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

func documents(s *store.Store) *store.Collection[*models.Document] {
	return store.NewCollection[*models.Document](s, store.KeyDocuments)
}

func photos(s *store.Store) *store.Collection[*models.Photo] {
	return store.NewCollection[*models.Photo](s, store.KeyPhotos)
}

// AddDocument persists a document record.
func AddDocument(s *store.Store, d *models.Document) bool {
	return documents(s).Append(d)
}

// AllDocuments returns every document record.
func AllDocuments(s *store.Store) []*models.Document {
	return documents(s).All()
}

// DocumentsByProject returns documents attached to a project.
func DocumentsByProject(s *store.Store, projectID string) []*models.Document {
	return documents(s).Filter(func(d *models.Document) bool {
		return d.ProjectID == projectID
	})
}

// DeleteDocument removes a document record. The underlying file is not
// touched.
func DeleteDocument(s *store.Store, id string) bool {
	return documents(s).Delete(id)
}

// AddPhoto persists a photo record.
func AddPhoto(s *store.Store, p *models.Photo) bool {
	return photos(s).Append(p)
}

// PhotosByProject returns photos attached to a project.
func PhotosByProject(s *store.Store, projectID string) []*models.Photo {
	return photos(s).Filter(func(p *models.Photo) bool {
		return p.ProjectID == projectID
	})
}

// DeletePhoto removes a photo record.
func DeletePhoto(s *store.Store, id string) bool {
	return photos(s).Delete(id)
}
