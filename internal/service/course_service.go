package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/quiz"
	"skillforge_backend/internal/repository"
	"skillforge_backend/internal/util"
	"skillforge_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
	Storage      *StorageService
	Activity     *ActivityService
}

func NewCourseService(courseRepo *repository.CourseRepository, progressRepo *repository.ProgressRepository, storage *StorageService, activity *ActivityService) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		ProgressRepo: progressRepo,
		Storage:      storage,
		Activity:     activity,
	}
}

type CourseInput struct {
	Title           string                 `json:"title" binding:"required"`
	Description     string                 `json:"description"`
	DifficultyLevel string                 `json:"difficulty"`
	InstructorName  string                 `json:"instructorName"`
	InstitutionName string                 `json:"institutionName"`
	Topics          []string               `json:"topics"`
	Links           []model.CourseMaterial `json:"links"`
}

func (s *CourseService) Create(mentorID string, input CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:           input.Title,
		Description:     input.Description,
		MentorID:        mentorID,
		InstructorName:  input.InstructorName,
		InstitutionName: input.InstitutionName,
		Topics:          input.Topics,
	}
	if input.DifficultyLevel != "" {
		course.Difficulty = parseDifficulty(input.DifficultyLevel)
	}
	for _, link := range input.Links {
		if link.Kind == model.MaterialLink && link.URL != "" {
			link.ID = model.GenerateUUID()
			course.Materials = append(course.Materials, link)
		}
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.Activity.Record(model.ActivityCourseCreate, "Course created: "+course.Title, map[string]interface{}{
		"courseId": course.ID,
		"mentorId": mentorID,
	})
	return course, nil
}

func (s *CourseService) GetByID(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *CourseService) List() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) ListByMentor(mentorID string) ([]model.Course, error) {
	return s.CourseRepo.FindByMentor(mentorID)
}

func (s *CourseService) Update(courseID, actorID string, isAdmin bool, input CourseInput) (*model.Course, error) {
	course, err := s.GetByID(courseID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && course.MentorID != actorID {
		return nil, util.ErrPermissionDenied
	}

	course.Title = input.Title
	course.Description = input.Description
	course.InstructorName = input.InstructorName
	course.InstitutionName = input.InstitutionName
	if input.Topics != nil {
		course.Topics = input.Topics
	}
	if input.DifficultyLevel != "" {
		course.Difficulty = parseDifficulty(input.DifficultyLevel)
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(courseID, actorID string, isAdmin bool) error {
	course, err := s.GetByID(courseID)
	if err != nil {
		return err
	}
	if !isAdmin && course.MentorID != actorID {
		return util.ErrPermissionDenied
	}
	return s.CourseRepo.Delete(courseID)
}

// UploadMaterial stores the uploaded file and appends it to the course's
// material list. Videos are probed for their duration before upload.
func (s *CourseService) UploadMaterial(ctx context.Context, courseID, actorID string, isAdmin bool, header *multipart.FileHeader, title string) (*model.CourseMaterial, error) {
	course, err := s.GetByID(courseID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && course.MentorID != actorID {
		return nil, util.ErrPermissionDenied
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	kind, contentType, err := classifyMaterial(ext)
	if err != nil {
		return nil, err
	}

	material := model.CourseMaterial{
		ID:    model.GenerateUUID(),
		Kind:  kind,
		Title: title,
		Size:  header.Size,
	}
	if material.Title == "" {
		material.Title = header.Filename
	}

	objectName := fmt.Sprintf("courses/%s/%s%s", courseID, material.ID, ext)

	if kind == model.MaterialVideo {
		url, duration, err := s.uploadVideo(ctx, objectName, header, contentType)
		if err != nil {
			return nil, err
		}
		material.URL = url
		material.Duration = duration
	} else {
		src, err := header.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		url, err := s.Storage.Upload(ctx, objectName, src, header.Size, contentType)
		if err != nil {
			return nil, err
		}
		material.URL = url
	}

	course.Materials = append(course.Materials, material)
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}

	s.Activity.Record(model.ActivityMaterialUpload, "Material added to "+course.Title, map[string]interface{}{
		"courseId":   courseID,
		"materialId": material.ID,
		"kind":       kind,
	})
	return &material, nil
}

// uploadVideo spools the upload to a temp file so ffprobe can read it, then
// pushes the same file to storage.
func (s *CourseService) uploadVideo(ctx context.Context, objectName string, header *multipart.FileHeader, contentType string) (string, float64, error) {
	src, err := header.Open()
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "skillforge-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", 0, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.ReadFrom(src); err != nil {
		tmp.Close()
		return "", 0, err
	}
	tmp.Close()

	duration := 0.0
	if info, err := util.ProbeVideo(tmp.Name()); err == nil {
		duration = info.Duration
	} else {
		logger.Log.Warn("video probe failed", zap.String("file", header.Filename), zap.Error(err))
	}

	url, err := s.Storage.UploadFile(ctx, objectName, tmp.Name(), contentType)
	if err != nil {
		return "", 0, err
	}
	return url, duration, nil
}

func (s *CourseService) RemoveMaterial(courseID, materialID, actorID string, isAdmin bool) error {
	course, err := s.GetByID(courseID)
	if err != nil {
		return err
	}
	if !isAdmin && course.MentorID != actorID {
		return util.ErrPermissionDenied
	}

	kept := course.Materials[:0]
	found := false
	for _, m := range course.Materials {
		if m.ID == materialID {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return util.ErrMaterialNotFound
	}
	course.Materials = kept
	return s.CourseRepo.Update(course)
}

// MarkMaterialViewed records that the student opened a material. Repeat
// views are a no-op.
func (s *CourseService) MarkMaterialViewed(courseID, materialID, studentID string) error {
	course, err := s.GetByID(courseID)
	if err != nil {
		return err
	}

	found := false
	for _, m := range course.Materials {
		if m.ID == materialID {
			found = true
			break
		}
	}
	if !found {
		return util.ErrMaterialNotFound
	}

	return s.ProgressRepo.MarkViewed(&model.MaterialProgress{
		StudentID:  studentID,
		CourseID:   courseID,
		MaterialID: materialID,
		ViewedAt:   time.Now(),
	})
}

func classifyMaterial(ext string) (model.MaterialKind, string, error) {
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return model.MaterialVideo, util.MimeVideo + strings.TrimPrefix(ext, "."), nil
		}
	}
	for _, allowed := range util.AllowedDocExtensions {
		if ext == allowed {
			return model.MaterialPDF, util.MimePDF, nil
		}
	}
	return "", "", fmt.Errorf("unsupported material type: %s", ext)
}

func parseDifficulty(s string) quiz.Difficulty {
	switch strings.ToLower(s) {
	case "intermediate":
		return quiz.Intermediate
	case "advanced":
		return quiz.Advanced
	default:
		return quiz.Beginner
	}
}
