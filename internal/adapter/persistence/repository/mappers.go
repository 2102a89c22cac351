package repository

import "fieldops/internal/domain/entities"

func fromJobModel(m jobModel) entities.Job {
	return entities.Job{
		ID:          m.ID,
		OrgID:       m.OrgID,
		CustomerID:  m.CustomerID,
		Title:       m.Title,
		Description: m.Description,
		JobType:     m.JobType,
		Status:      entities.JobStatus(m.Status),
		ScheduledAt: m.ScheduledAt,
		Notes:       m.Notes,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toJobModel(j entities.Job) jobModel {
	return jobModel{
		ID:          j.ID,
		OrgID:       j.OrgID,
		CustomerID:  j.CustomerID,
		Title:       j.Title,
		Description: j.Description,
		JobType:     j.JobType,
		Status:      string(j.Status),
		ScheduledAt: j.ScheduledAt,
		Notes:       j.Notes,
		CreatedBy:   j.CreatedBy,
		CreatedAt:   j.CreatedAt,
	}
}

func fromEquipmentModel(m equipmentModel) entities.Equipment {
	return entities.Equipment{
		ID:                    m.ID,
		OrgID:                 m.OrgID,
		CustomerID:            m.CustomerID,
		Name:                  m.Name,
		ServiceIntervalMonths: m.ServiceIntervalMonths,
		LastServiceDate:       m.LastServiceDate,
		NextServiceDate:       m.NextServiceDate,
	}
}

func toCompletedJobModel(cj entities.CompletedJob) completedJobModel {
	return completedJobModel{
		ID:                   cj.ID,
		OrgID:                cj.OrgID,
		OriginalJobID:        cj.OriginalJobID,
		CustomerID:           cj.CustomerID,
		CustomerNameSnapshot: cj.CustomerNameSnapshot,
		Title:                cj.Title,
		Description:          cj.Description,
		JobType:              cj.JobType,
		Notes:                cj.Notes,
		ScheduledAt:          cj.ScheduledAt,
		CompletedAt:          cj.CompletedAt,
		CompletedBy:          cj.CompletedBy,
		OriginalCreatedBy:    cj.OriginalCreatedBy,
		OriginalCreatedAt:    cj.OriginalCreatedAt,
	}
}

func fromCompletedJobModel(m completedJobModel) entities.CompletedJob {
	return entities.CompletedJob{
		ID:                   m.ID,
		OrgID:                m.OrgID,
		OriginalJobID:        m.OriginalJobID,
		CustomerID:           m.CustomerID,
		CustomerNameSnapshot: m.CustomerNameSnapshot,
		Title:                m.Title,
		Description:          m.Description,
		JobType:              m.JobType,
		Notes:                m.Notes,
		ScheduledAt:          m.ScheduledAt,
		CompletedAt:          m.CompletedAt,
		CompletedBy:          m.CompletedBy,
		OriginalCreatedBy:    m.OriginalCreatedBy,
		OriginalCreatedAt:    m.OriginalCreatedAt,
	}
}

func (c ArchiveColumns) keys() entities.ArchiveKeys {
	return entities.ArchiveKeys{
		CompletedJobID: c.CompletedJobID,
		OriginalJobID:  c.OriginalJobID,
		OrgID:          c.OrgID,
	}
}
